package card

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xtding233/card-detail/internal/stats"
)

var (
	ErrUnknownCard = errors.New("unknown card")
	ErrNoResults   = errors.New("expected a card array or an object with a results array")
)

// Pool is the full card set, indexed by game id.
type Pool struct {
	cards map[GameID]*Record
	order []GameID
}

// NewPool indexes records. A later record with the same id replaces an earlier one.
func NewPool(records []Record) *Pool {
	p := &Pool{cards: make(map[GameID]*Record, len(records))}
	for i := range records {
		r := records[i]
		if _, dup := p.cards[r.GameID]; !dup {
			p.order = append(p.order, r.GameID)
		}
		p.cards[r.GameID] = &r
	}
	return p
}

// DecodePool reads either a JSON array of cards or a paged API response
// ({"results": [...]}). Any other object is an error.
func DecodePool(r io.Reader) (*Pool, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var records []Record
		if err := json.Unmarshal(b, &records); err != nil {
			return nil, fmt.Errorf("decode card pool: %w", err)
		}
		return NewPool(records), nil
	}
	var page struct {
		Results *[]Record `json:"results"`
	}
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, fmt.Errorf("decode card pool: %w", err)
	}
	if page.Results == nil {
		return nil, fmt.Errorf("decode card pool: %w", ErrNoResults)
	}
	return NewPool(*page.Results), nil
}

// LoadPool reads a card pool file from disk.
func LoadPool(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePool(f)
}

// Get returns the card with the given id.
func (p *Pool) Get(id GameID) (*Record, error) {
	if p != nil {
		if r, ok := p.cards[id]; ok {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
}

// Len returns the number of distinct cards.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// IDs returns card ids in load order.
func (p *Pool) IDs() []GameID {
	if p == nil {
		return nil
	}
	return append([]GameID(nil), p.order...)
}

// MaxStats returns, per attribute, the highest value any card reaches in any
// of its three vectors. Attributes no card reaches are left out, so the result
// fails Validate on an empty pool.
func (p *Pool) MaxStats() stats.GameMaxStats {
	out := stats.GameMaxStats{}
	if p == nil {
		return out
	}
	for _, id := range p.order {
		r := p.cards[id]
		for _, v := range []stats.StatVector{
			{r.MinSmile, r.MinPure, r.MinCool},
			{r.NonIdolMaxSmile, r.NonIdolMaxPure, r.NonIdolMaxCool},
			{r.IdolMaxSmile, r.IdolMaxPure, r.IdolMaxCool},
		} {
			for i, a := range stats.Attributes {
				if v[i] > 0 && v[i] > out[a] {
					out[a] = v[i]
				}
			}
		}
	}
	return out
}
