package card

import (
	"errors"
	"fmt"

	"github.com/xtding233/card-detail/internal/stats"
)

var ErrNilCard = errors.New("card record is nil")

// DeriveStats copies the card's raw stat fields into vectors and pairs them
// with the game-wide maxima. gameMax is validated before anything else.
func DeriveStats(rec *Record, gameMax stats.GameMaxStats) (Derived, error) {
	if rec == nil {
		return Derived{}, ErrNilCard
	}
	if err := gameMax.Validate(); err != nil {
		return Derived{}, fmt.Errorf("derive stats for card %s: %w", rec.GameID, err)
	}
	return Derived{
		Min:        stats.StatVector{rec.MinSmile, rec.MinPure, rec.MinCool},
		NonIdolMax: stats.StatVector{rec.NonIdolMaxSmile, rec.NonIdolMaxPure, rec.NonIdolMaxCool},
		IdolMax:    stats.StatVector{rec.IdolMaxSmile, rec.IdolMaxPure, rec.IdolMaxCool},
		Max:        gameMax.Vector(),
	}, nil
}
