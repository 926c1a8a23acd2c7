package card

import (
	"fmt"

	"github.com/xtding233/card-detail/internal/stats"
)

// Tier selects which level's stats are displayed.
type Tier int

const (
	Level1 Tier = iota
	NonIdolMax
	IdolMax
)

func (t Tier) String() string {
	switch t {
	case Level1:
		return "level1"
	case NonIdolMax:
		return "non_idol_max"
	case IdolMax:
		return "idol_max"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	return t >= Level1 && t <= IdolMax
}

// Available is the single place where a zero field means "this tier does not
// exist": the non-idolized tier needs a non-zero smile stat, the idolized tier
// a non-zero max level. Level 1 always exists.
func Available(rec *Record, t Tier) bool {
	if rec == nil {
		return false
	}
	switch t {
	case Level1:
		return true
	case NonIdolMax:
		return rec.NonIdolMaxSmile != 0
	case IdolMax:
		return rec.IdolMaxLevel != 0
	}
	return false
}

// AvailableTiers returns the selectable tiers in display order.
func AvailableTiers(rec *Record) []Tier {
	var out []Tier
	for _, t := range []Tier{Level1, NonIdolMax, IdolMax} {
		if Available(rec, t) {
			out = append(out, t)
		}
	}
	return out
}

// TierLabel is the caption shown on a tier's button.
func TierLabel(rec *Record, t Tier) string {
	switch t {
	case NonIdolMax:
		return fmt.Sprintf("Level %d", rec.NonIdolMaxLevel)
	case IdolMax:
		return fmt.Sprintf("Level %d", rec.IdolMaxLevel)
	}
	return "Level 1"
}

// Vector returns the derived vector shown for tier t.
func (d Derived) Vector(t Tier) stats.StatVector {
	switch t {
	case NonIdolMax:
		return d.NonIdolMax
	case IdolMax:
		return d.IdolMax
	}
	return d.Min
}
