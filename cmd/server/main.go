package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/xtding233/card-detail/internal/card"
	"github.com/xtding233/card-detail/internal/game"
	"github.com/xtding233/card-detail/internal/rpc"
	"github.com/xtding233/card-detail/internal/stats"
)

type options struct {
	addr      string
	grpcAddr  string
	configDir string
	region    string
	cardsPath string
	watch     time.Duration
	logLevel  string
	logFormat string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.addr, "addr", ":8080", "HTTP listen address")
	flag.StringVar(&o.grpcAddr, "grpc-addr", ":9090", "gRPC listen address; empty disables gRPC")
	flag.StringVar(&o.configDir, "config", "config", "directory holding stats/default.yaml")
	flag.StringVar(&o.region, "region", "", "region override file under stats/regions (e.g. jp, ww)")
	flag.StringVar(&o.cardsPath, "cards", "", "card pool JSON file")
	flag.DurationVar(&o.watch, "watch", 5*time.Second, "snapshot reload poll interval; 0 disables")
	flag.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.StringVar(&o.logFormat, "log-format", "text", "text or json")
	flag.Parse()
	return o
}

func newLogger(o options) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		level = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(o.logFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, hopts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, hopts))
}

func main() {
	o := parseFlags()
	logger := newLogger(o)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, o, logger)
	stop()
	if err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

// run serves until ctx is done or a listener fails. Everything it started is
// shut down before it returns.
func run(ctx context.Context, o options, logger *slog.Logger) error {
	pool := card.NewPool(nil)
	var poolMax stats.GameMaxStats
	if o.cardsPath != "" {
		p, err := card.LoadPool(o.cardsPath)
		if err != nil {
			return fmt.Errorf("load card pool %s: %w", o.cardsPath, err)
		}
		pool, poolMax = p, p.MaxStats()
		logger.Info("card pool loaded", slog.Int("cards", pool.Len()))
	}

	store := game.NewStore(game.NewLoader(o.configDir), o.region, poolMax, logger)
	if err := store.Reload(); err != nil {
		// keep serving: views drop their stats panel until a snapshot loads
		logger.Warn("starting without max stats snapshot", slog.Any("error", err))
	}

	// bind both listeners before serving so a bad address fails fast
	httpLis, err := net.Listen("tcp", o.addr)
	if err != nil {
		return fmt.Errorf("HTTP listen %s: %w", o.addr, err)
	}
	var grpcLis net.Listener
	if o.grpcAddr != "" {
		grpcLis, err = net.Listen("tcp", o.grpcAddr)
		if err != nil {
			httpLis.Close()
			return fmt.Errorf("gRPC listen %s: %w", o.grpcAddr, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if o.watch > 0 {
		go store.Watcher(o.watch).Run(ctx)
	}

	a := &app{store: store, pool: pool, log: logger}
	srv := &http.Server{
		Handler:           a.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("HTTP listening", slog.String("addr", httpLis.Addr().String()))
		if err := srv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP serve: %w", err)
		}
	}()

	if grpcLis != nil {
		gs := rpc.NewGRPCServer(rpc.NewServer(store, pool, logger), logger)
		go func() {
			logger.Info("gRPC listening", slog.String("addr", grpcLis.Addr().String()))
			if err := gs.Serve(grpcLis); err != nil {
				errCh <- fmt.Errorf("gRPC serve: %w", err)
			}
		}()
		defer gs.GracefulStop()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case runErr = <-errCh:
	}
	shutdownCtx, stopShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("HTTP shutdown: %w", err)
	}
	return runErr
}
