package card

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/card-detail/internal/stats"
)

var gameMax = stats.GameMaxStats{stats.Smile: 5000, stats.Pure: 5200, stats.Cool: 5400}

func fullCard() *Record {
	return &Record{
		GameID:          "1024",
		Attribute:       stats.Pure,
		MinSmile:        2100,
		MinPure:         3400,
		MinCool:         2000,
		NonIdolMaxSmile: 3500,
		NonIdolMaxPure:  4300,
		NonIdolMaxCool:  3300,
		IdolMaxSmile:    3750,
		IdolMaxPure:     4550,
		IdolMaxCool:     3550,
		NonIdolMaxLevel: 80,
		IdolMaxLevel:    100,
		HP:              4,
	}
}

func TestDeriveStatsPassThrough(t *testing.T) {
	rec := fullCard()
	d, err := DeriveStats(rec, gameMax)
	require.NoError(t, err)

	assert.Equal(t, stats.StatVector{2100, 3400, 2000}, d.Min)
	assert.Equal(t, stats.StatVector{3500, 4300, 3300}, d.NonIdolMax)
	assert.Equal(t, stats.StatVector{3750, 4550, 3550}, d.IdolMax)
	assert.Equal(t, stats.StatVector{5000, 5200, 5400}, d.Max)
}

func TestDeriveStatsUnorderedData(t *testing.T) {
	rec := fullCard()
	rec.IdolMaxSmile = 10 // below the minimum; must still pass through
	d, err := DeriveStats(rec, gameMax)
	require.NoError(t, err)
	assert.Equal(t, 10, d.IdolMax[0])
}

func TestDeriveStatsErrors(t *testing.T) {
	_, err := DeriveStats(nil, gameMax)
	assert.ErrorIs(t, err, ErrNilCard)

	_, err = DeriveStats(fullCard(), stats.GameMaxStats{stats.Smile: 0, stats.Pure: 2000, stats.Cool: 2000})
	assert.ErrorIs(t, err, stats.ErrMissingMaxStats)

	_, err = DeriveStats(fullCard(), stats.GameMaxStats{stats.Smile: 2000, stats.Pure: 2000})
	assert.ErrorIs(t, err, stats.ErrMissingMaxStats)
}

func TestAvailability(t *testing.T) {
	rec := fullCard()
	assert.Equal(t, []Tier{Level1, NonIdolMax, IdolMax}, AvailableTiers(rec))

	promo := &Record{MinSmile: 100}
	assert.Equal(t, []Tier{Level1}, AvailableTiers(promo))
	assert.False(t, Available(promo, NonIdolMax))
	assert.False(t, Available(promo, IdolMax))
	assert.False(t, Available(rec, Tier(7)))
	assert.False(t, Available(nil, Level1))

	// idolized-only card: no non-idolized stats but an idolized max level
	idolOnly := &Record{IdolMaxLevel: 100}
	assert.Equal(t, []Tier{Level1, IdolMax}, AvailableTiers(idolOnly))
}

func TestTierLabel(t *testing.T) {
	rec := fullCard()
	assert.Equal(t, "Level 1", TierLabel(rec, Level1))
	assert.Equal(t, "Level 80", TierLabel(rec, NonIdolMax))
	assert.Equal(t, "Level 100", TierLabel(rec, IdolMax))
	assert.Equal(t, "idol_max", IdolMax.String())
	assert.False(t, Tier(-1).Valid())
}

func TestScenarioLevel1Only(t *testing.T) {
	rec := &Record{MinSmile: 100}
	d, err := DeriveStats(rec, stats.GameMaxStats{stats.Smile: 2000, stats.Pure: 2000, stats.Cool: 2000})
	require.NoError(t, err)
	assert.Equal(t, []Tier{Level1}, AvailableTiers(rec))

	p, err := stats.ProgressFraction(0, d.Min[0], d.Max)
	require.NoError(t, err)
	assert.Equal(t, 5.0, p)
}

func TestGameIDDecoding(t *testing.T) {
	var recs []Record
	require.NoError(t, json.Unmarshal([]byte(`[{"game_id": 42}, {"game_id": "43"}, {"game_id": null}]`), &recs))
	assert.Equal(t, GameID("42"), recs[0].GameID)
	assert.Equal(t, GameID("43"), recs[1].GameID)
	assert.Equal(t, GameID(""), recs[2].GameID)

	var r Record
	assert.Error(t, json.Unmarshal([]byte(`{"game_id": true}`), &r))

	require.NoError(t, json.Unmarshal([]byte(`{"game_id": 1e3}`), &r))
	assert.Equal(t, GameID("1000"), r.GameID)
	require.NoError(t, json.Unmarshal([]byte(`{"game_id": 12.0}`), &r))
	assert.Equal(t, GameID("12"), r.GameID)
	assert.Error(t, json.Unmarshal([]byte(`{"game_id": 1.5}`), &r))
}

const poolJSON = `{"results": [
	{"game_id": 1, "attribute": "Smile", "minimum_statistics_smile": 1500, "idolized_maximum_statistics_smile": 4800, "idolized_maximum_statistics_pure": 2800, "idolized_maximum_statistics_cool": 2700, "event": null, "card_image": null},
	{"game_id": 2, "attribute": "Cool", "idolized_maximum_statistics_smile": 3000, "idolized_maximum_statistics_pure": 3100, "idolized_maximum_statistics_cool": 5100},
	{"game_id": 3, "attribute": "Pure", "non_idolized_maximum_statistics_pure": 4950, "idolized_maximum_statistics_pure": 4900}
]}`

func TestPool(t *testing.T) {
	p, err := DecodePool(strings.NewReader(poolJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []GameID{"1", "2", "3"}, p.IDs())

	rec, err := p.Get("2")
	require.NoError(t, err)
	assert.Equal(t, stats.Cool, rec.Attribute)

	_, err = p.Get("99")
	assert.ErrorIs(t, err, ErrUnknownCard)

	m := p.MaxStats()
	require.NoError(t, m.Validate())
	assert.Equal(t, stats.GameMaxStats{stats.Smile: 4800, stats.Pure: 4950, stats.Cool: 5100}, m)
}

func TestPoolArrayAndEmpty(t *testing.T) {
	p, err := DecodePool(strings.NewReader(`[{"game_id": "7"}, {"game_id": "7", "hp": 3}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Len())
	rec, err := p.Get("7")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.HP)

	assert.ErrorIs(t, p.MaxStats().Validate(), stats.ErrMissingMaxStats)

	_, err = DecodePool(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestDecodePoolRejectsObjectWithoutResults(t *testing.T) {
	for _, in := range []string{
		`{"game_id": 1, "hp": 3}`,
		`{"cards": [{"game_id": 1}]}`,
		`{}`,
		`{"results": null}`,
	} {
		_, err := DecodePool(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrNoResults, in)
	}

	_, err := DecodePool(strings.NewReader(`[{"game_id": 1}`))
	assert.Error(t, err)

	p, err := DecodePool(strings.NewReader("  \n{\"results\": []}"))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
}
