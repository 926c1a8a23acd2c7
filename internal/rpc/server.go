package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/card-detail/internal/card"
	"github.com/xtding233/card-detail/internal/detail"
	"github.com/xtding233/card-detail/internal/selection"
	"github.com/xtding233/card-detail/internal/stats"
)

// MaxStatsSource yields the current game-wide maxima.
type MaxStatsSource interface {
	MaxStats() (stats.GameMaxStats, error)
}

// Server implements CardDetailServer over a card pool and a max-stats source.
type Server struct {
	maxStats MaxStatsSource
	pool     *card.Pool
	log      *slog.Logger
}

func NewServer(src MaxStatsSource, pool *card.Pool, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{maxStats: src, pool: pool, log: logger}
}

// NewGRPCServer builds a grpc.Server with request logging, the card detail
// service and the standard health service.
func NewGRPCServer(srv CardDetailServer, logger *slog.Logger) *grpc.Server {
	if logger == nil {
		logger = slog.Default()
	}
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(LoggingInterceptor(logger)))
	RegisterCardDetailServer(gs, srv)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)
	return gs
}

func (s *Server) Derive(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tier, err := tierField(req)
	if err != nil {
		return nil, err
	}
	cv, ok := req.GetFields()["card"]
	if !ok || cv.GetStructValue() == nil {
		return nil, status.Error(codes.InvalidArgument, "card is required")
	}
	b, err := protojson.Marshal(cv)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "card: %v", err)
	}
	var rec card.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "card: %v", err)
	}
	return s.render(&rec, tier)
}

func (s *Server) Lookup(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tier, err := tierField(req)
	if err != nil {
		return nil, err
	}
	id, err := idField(req)
	if err != nil {
		return nil, err
	}
	rec, err := s.pool.Get(id)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return s.render(rec, tier)
}

func (s *Server) render(rec *card.Record, tier card.Tier) (*structpb.Struct, error) {
	// without a snapshot the view is still served, minus the stats panel
	maxes, err := s.maxStats.MaxStats()
	if err != nil {
		maxes = nil
	}
	v, err := detail.Build(rec, maxes, detail.Options{Tier: tier, Logger: s.log})
	if err != nil {
		if errors.Is(err, selection.ErrTierUnavailable) || errors.Is(err, card.ErrNilCard) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	out, err := toStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func tierField(req *structpb.Struct) (card.Tier, error) {
	v, ok := req.GetFields()["tier"]
	if !ok {
		return card.Level1, nil
	}
	n := v.GetNumberValue()
	if _, isNum := v.GetKind().(*structpb.Value_NumberValue); !isNum || n != math.Trunc(n) || !card.Tier(n).Valid() {
		return 0, status.Errorf(codes.InvalidArgument, "tier must be 0, 1 or 2")
	}
	return card.Tier(n), nil
}

func idField(req *structpb.Struct) (card.GameID, error) {
	v, ok := req.GetFields()["id"]
	if ok {
		switch k := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			if k.StringValue != "" {
				return card.GameID(k.StringValue), nil
			}
		case *structpb.Value_NumberValue:
			if k.NumberValue == math.Trunc(k.NumberValue) {
				return card.GameID(strconv.FormatInt(int64(k.NumberValue), 10)), nil
			}
		}
	}
	return "", status.Error(codes.InvalidArgument, "id is required")
}

// toStruct converts any JSON-encodable value to a Struct.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("to struct: %w", err)
	}
	return out, nil
}

// fromStruct decodes a Struct into v through its JSON form.
func fromStruct(s *structpb.Struct, v any) error {
	b, err := protojson.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// LoggingInterceptor logs each unary call with its status code and duration.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		level := slog.LevelInfo
		switch code {
		case codes.OK:
		case codes.InvalidArgument, codes.NotFound:
			level = slog.LevelWarn
		default:
			level = slog.LevelError
		}
		attrs := []slog.Attr{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		logger.LogAttrs(ctx, level, "gRPC request processed", attrs...)
		return resp, err
	}
}
