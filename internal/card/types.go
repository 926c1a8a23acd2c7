package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/xtding233/card-detail/internal/stats"
)

// GameID is the card's in-game number. The card API serves it either as a
// JSON number or a string; both decode to the same value.
type GameID string

func (id *GameID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = GameID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("game_id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = GameID(strconv.FormatInt(i, 10))
		return nil
	}
	// forms like 1e3 or 12.0 still name an integer id
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return fmt.Errorf("game_id: %s is not an integer", n)
	}
	*id = GameID(strconv.FormatInt(int64(f), 10))
	return nil
}

// Idol is the character printed on the card.
type Idol struct {
	Name     string `json:"name"`
	MainUnit string `json:"main_unit"`
	SubUnit  string `json:"sub_unit"`
}

// Event is the in-game event a card was distributed in.
type Event struct {
	JapaneseName string `json:"japanese_name"`
	EnglishName  string `json:"english_name"`
	Image        string `json:"image"`
}

// Record is a card as served by the card API. Only the stat and level fields
// are interpreted; the rest is passed through to the detail view.
type Record struct {
	GameID    GameID          `json:"game_id"`
	Attribute stats.Attribute `json:"attribute"`
	Idol      Idol            `json:"idol"`

	MinSmile int `json:"minimum_statistics_smile"`
	MinPure  int `json:"minimum_statistics_pure"`
	MinCool  int `json:"minimum_statistics_cool"`

	NonIdolMaxSmile int `json:"non_idolized_maximum_statistics_smile"`
	NonIdolMaxPure  int `json:"non_idolized_maximum_statistics_pure"`
	NonIdolMaxCool  int `json:"non_idolized_maximum_statistics_cool"`

	IdolMaxSmile int `json:"idolized_maximum_statistics_smile"`
	IdolMaxPure  int `json:"idolized_maximum_statistics_pure"`
	IdolMaxCool  int `json:"idolized_maximum_statistics_cool"`

	// 0 means the tier does not exist for this card
	NonIdolMaxLevel int `json:"non_idolized_max_level"`
	IdolMaxLevel    int `json:"idolized_max_level"`

	ReleaseDate        string `json:"release_date,omitempty"`
	IsPromo            bool   `json:"is_promo"`
	JapanOnly          bool   `json:"japan_only"`
	Skill              string `json:"skill,omitempty"`
	SkillDetails       string `json:"skill_details,omitempty"`
	CenterSkill        string `json:"center_skill,omitempty"`
	CenterSkillDetails string `json:"center_skill_details,omitempty"`
	Event              *Event `json:"event,omitempty"`
	HP                 int    `json:"hp"`
	CardImage          string `json:"card_image,omitempty"`
	CardIdolizedImage  string `json:"card_idolized_image,omitempty"`
}

// Derived holds the vectors the detail screen needs for one card.
// Max is the game-wide denominator, never the card's own idolized maximum.
type Derived struct {
	Min        stats.StatVector `json:"min"`
	NonIdolMax stats.StatVector `json:"non_idol_max"`
	IdolMax    stats.StatVector `json:"idol_max"`
	Max        stats.StatVector `json:"max"`
}
