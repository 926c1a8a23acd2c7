package detail

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xtding233/card-detail/internal/card"
	"github.com/xtding233/card-detail/internal/selection"
	"github.com/xtding233/card-detail/internal/stats"
)

// Header is the top bar of the detail screen.
type Header struct {
	IdolName string    `json:"idol_name"`
	MainUnit string    `json:"main_unit,omitempty"`
	SubUnit  string    `json:"sub_unit,omitempty"`
	Colors   [2]string `json:"colors"`
}

// Image is a card artwork entry, in viewer order.
type Image struct {
	URL      string `json:"url"`
	Idolized bool   `json:"idolized"`
}

// EventBanner links the card to its event.
type EventBanner struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// TierButton is one level switch above the progress bars.
type TierButton struct {
	Tier   card.Tier `json:"tier"`
	Label  string    `json:"label"`
	Active bool      `json:"active"`
	Color  string    `json:"color"`
}

// ProgressBar is one attribute's bar. Percent may exceed 100.
type ProgressBar struct {
	Attribute stats.Attribute `json:"attribute"`
	Value     int             `json:"value"`
	Percent   float64         `json:"percent"`
	Color     string          `json:"color"`
}

// StatsPanel is the tier selector with its bars.
type StatsPanel struct {
	Buttons []TierButton  `json:"buttons"`
	Bars    []ProgressBar `json:"bars"`
}

// View is everything the detail screen renders for one card.
type View struct {
	GameID   card.GameID  `json:"game_id"`
	Header   Header       `json:"header"`
	Gradient []string     `json:"gradient"`
	Images   []Image      `json:"images"`
	Info     []TextRow    `json:"info"`
	Flags    string       `json:"flags,omitempty"`
	Sections []Section    `json:"sections"`
	Event    *EventBanner `json:"event,omitempty"`
	HP       int          `json:"hp,omitempty"`

	// Stats is nil when the card has no hp or its stats could not be derived.
	Stats      *StatsPanel `json:"stats,omitempty"`
	StatsError string      `json:"stats_error,omitempty"`
}

// Options controls Build.
type Options struct {
	Tier   card.Tier
	Logger *slog.Logger
}

// Build assembles the detail view of rec. Stat failures do not fail the view:
// the stats panel is left out and the reason recorded. Only a nil card or a
// tier the card does not have is returned as an error.
func Build(rec *card.Record, gameMax stats.GameMaxStats, opts Options) (*View, error) {
	if rec == nil {
		return nil, card.ErrNilCard
	}
	// checked before hp and stats so the answer does not depend on either
	if !opts.Tier.Valid() || !card.Available(rec, opts.Tier) {
		return nil, fmt.Errorf("%w: %s", selection.ErrTierUnavailable, opts.Tier)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	colors := AttributeColors(rec.Attribute)
	v := &View{
		GameID: rec.GameID,
		Header: Header{
			IdolName: rec.Idol.Name,
			MainUnit: rec.Idol.MainUnit,
			SubUnit:  rec.Idol.SubUnit,
			Colors:   colors,
		},
		Gradient: []string{colors[1], colors[0], "white"},
		Images:   images(rec),
		Info: []TextRow{
			Row("Card ID", string(rec.GameID)),
			Row("Release date", ReleaseDate(rec.ReleaseDate)),
		},
		Flags:    flags(rec),
		Sections: sections(rec),
	}
	if rec.Event != nil {
		v.Event = &EventBanner{Name: rec.Event.JapaneseName, ImageURL: HTTPS(rec.Event.Image)}
	}
	if rec.HP == 0 {
		return v, nil
	}
	v.HP = rec.HP
	v.Sections = append(v.Sections, separated("hp", Row("HP", strconv.Itoa(rec.HP))))

	panel, err := statsPanel(rec, gameMax, opts.Tier)
	switch {
	case errors.Is(err, selection.ErrTierUnavailable):
		return nil, err
	case err != nil:
		logger.Warn("stats omitted",
			slog.String("game_id", string(rec.GameID)),
			slog.Any("error", err),
		)
		v.StatsError = err.Error()
	default:
		v.Stats = panel
	}
	return v, nil
}

func statsPanel(rec *card.Record, gameMax stats.GameMaxStats, tier card.Tier) (*StatsPanel, error) {
	derived, err := card.DeriveStats(rec, gameMax)
	if err != nil {
		return nil, err
	}
	sel := selection.New(rec, derived)
	if tier != card.Level1 {
		if err := sel.SelectTier(tier); err != nil {
			return nil, err
		}
	}
	pct, err := sel.Bars()
	if err != nil {
		return nil, err
	}

	panel := &StatsPanel{}
	for _, o := range sel.Options() {
		panel.Buttons = append(panel.Buttons, TierButton{
			Tier:   o.Tier,
			Label:  o.Label,
			Active: o.Active,
			Color:  buttonColor(o.Active),
		})
	}
	cur := sel.CurrentStats()
	for i, a := range stats.Attributes {
		panel.Bars = append(panel.Bars, ProgressBar{
			Attribute: a,
			Value:     cur.Get(a),
			Percent:   pct[i],
			Color:     barColor(a),
		})
	}
	return panel, nil
}

func images(rec *card.Record) []Image {
	var out []Image
	if rec.CardImage != "" {
		out = append(out, Image{URL: HTTPS(rec.CardImage)})
	}
	if rec.CardIdolizedImage != "" {
		out = append(out, Image{URL: HTTPS(rec.CardIdolizedImage), Idolized: true})
	}
	return out
}

func flags(rec *card.Record) string {
	var parts []string
	if rec.IsPromo {
		parts = append(parts, "Promo card")
	}
	if rec.JapanOnly {
		parts = append(parts, "Japan only")
	}
	return strings.Join(parts, " - ")
}

func sections(rec *card.Record) []Section {
	var out []Section
	if rec.Skill != "" {
		out = append(out, separated("skill", Row("Skill", rec.Skill), SubtitleRow(rec.SkillDetails)))
	}
	if rec.CenterSkill != "" {
		out = append(out, separated("center_skill", Row("Center skill", rec.CenterSkill), SubtitleRow(rec.CenterSkillDetails)))
	}
	if rec.Event != nil {
		out = append(out, separated("event",
			WideRow("Event", rec.Event.JapaneseName),
			WideRow("", rec.Event.EnglishName),
		))
	}
	return out
}
