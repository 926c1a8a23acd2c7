package rpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/card-detail/internal/card"
	"github.com/xtding233/card-detail/internal/stats"
)

type fixedMax struct {
	m   stats.GameMaxStats
	err error
}

func (f fixedMax) MaxStats() (stats.GameMaxStats, error) { return f.m, f.err }

func testCard() card.Record {
	return card.Record{
		GameID:          "77",
		Attribute:       stats.Smile,
		Idol:            card.Idol{Name: "Kousaka Honoka"},
		MinSmile:        1000,
		MinPure:         500,
		MinCool:         500,
		NonIdolMaxSmile: 1800,
		NonIdolMaxPure:  900,
		NonIdolMaxCool:  900,
		IdolMaxSmile:    2200,
		IdolMaxPure:     1000,
		IdolMaxCool:     1000,
		NonIdolMaxLevel: 60,
		IdolMaxLevel:    80,
		HP:              3,
	}
}

func dial(t *testing.T, src MaxStatsSource) *grpc.ClientConn {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pool := card.NewPool([]card.Record{testCard()})

	lis := bufconn.Listen(1 << 20)
	gs := NewGRPCServer(NewServer(src, pool, logger), logger)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

var maxes = fixedMax{m: stats.GameMaxStats{stats.Smile: 2000, stats.Pure: 2000, stats.Cool: 2000}}

func TestDeriveRoundTrip(t *testing.T) {
	c := NewClient(dial(t, maxes))
	rec := testCard()

	v, err := c.Derive(context.Background(), &rec, card.IdolMax)
	require.NoError(t, err)
	assert.Equal(t, card.GameID("77"), v.GameID)
	require.NotNil(t, v.Stats)
	require.Len(t, v.Stats.Bars, 3)
	assert.Equal(t, 110.0, v.Stats.Bars[0].Percent)
	assert.Equal(t, 50.0, v.Stats.Bars[1].Percent)
	assert.True(t, v.Stats.Buttons[2].Active)
	assert.Equal(t, "Level 80", v.Stats.Buttons[2].Label)
}

func TestLookup(t *testing.T) {
	c := NewClient(dial(t, maxes))

	v, err := c.Lookup(context.Background(), "77", card.Level1)
	require.NoError(t, err)
	assert.Equal(t, "Kousaka Honoka", v.Header.IdolName)
	assert.Equal(t, 50.0, v.Stats.Bars[0].Percent)

	_, err = c.Lookup(context.Background(), "404", card.Level1)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestInvalidArguments(t *testing.T) {
	conn := dial(t, maxes)
	c := NewClient(conn)
	rec := testCard()
	rec.IdolMaxLevel = 0

	_, err := c.Derive(context.Background(), &rec, card.IdolMax)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Lookup(context.Background(), "77", card.Tier(5))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	out := new(structpb.Struct)
	empty := &structpb.Struct{Fields: map[string]*structpb.Value{"tier": structpb.NewNumberValue(0)}}
	err = conn.Invoke(context.Background(), deriveMethod, empty, out)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	err = conn.Invoke(context.Background(), lookupMethod, empty, out)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMissingSnapshotOmitsStats(t *testing.T) {
	c := NewClient(dial(t, fixedMax{err: stats.ErrMissingMaxStats}))
	v, err := c.Lookup(context.Background(), "77", card.Level1)
	require.NoError(t, err)
	assert.Nil(t, v.Stats)
	assert.NotEmpty(t, v.StatsError)

	rec := testCard()
	rec.IdolMaxLevel = 0
	_, err = c.Derive(context.Background(), &rec, card.IdolMax)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHealth(t *testing.T) {
	hc := healthpb.NewHealthClient(dial(t, maxes))
	resp, err := hc.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
