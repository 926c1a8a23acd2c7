package selection

import (
	"errors"
	"fmt"

	"github.com/xtding233/card-detail/internal/card"
	"github.com/xtding233/card-detail/internal/stats"
)

var ErrTierUnavailable = errors.New("tier not available for this card")

// LevelSelection tracks which tier's stats a card view is showing.
// It starts at Level 1 with the minimum stats and lives as long as the view.
// Not safe for concurrent use.
type LevelSelection struct {
	rec     *card.Record
	derived card.Derived

	active  card.Tier
	current stats.StatVector
}

// Option is one selectable tier as offered to the renderer.
type Option struct {
	Tier   card.Tier        `json:"tier"`
	Label  string           `json:"label"`
	Stats  stats.StatVector `json:"stats"`
	Active bool             `json:"active"`
}

// New returns a selection at Level 1 for rec.
func New(rec *card.Record, derived card.Derived) *LevelSelection {
	return &LevelSelection{
		rec:     rec,
		derived: derived,
		active:  card.Level1,
		current: derived.Min,
	}
}

func (s *LevelSelection) ActiveTier() card.Tier { return s.active }

func (s *LevelSelection) CurrentStats() stats.StatVector { return s.current }

// Select makes tier active and shows vector. Each call replaces the previous
// state entirely. Tiers the card does not have are refused and leave the
// state unchanged.
func (s *LevelSelection) Select(tier card.Tier, vector stats.StatVector) error {
	if !tier.Valid() || !card.Available(s.rec, tier) {
		return fmt.Errorf("%w: %s", ErrTierUnavailable, tier)
	}
	s.active = tier
	s.current = vector
	return nil
}

// SelectTier selects tier with the card's own vector for it.
func (s *LevelSelection) SelectTier(tier card.Tier) error {
	return s.Select(tier, s.derived.Vector(tier))
}

// Options lists the available tiers in button order.
func (s *LevelSelection) Options() []Option {
	tiers := card.AvailableTiers(s.rec)
	out := make([]Option, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, Option{
			Tier:   t,
			Label:  card.TierLabel(s.rec, t),
			Stats:  s.derived.Vector(t),
			Active: t == s.active,
		})
	}
	return out
}

// Bars returns the progress percentage of each channel of the current stats.
func (s *LevelSelection) Bars() ([3]float64, error) {
	return stats.Bars(s.current, s.derived.Max)
}
