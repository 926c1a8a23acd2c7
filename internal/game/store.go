package game

import (
	"fmt"
	"log/slog"
	"maps"
	"sync/atomic"
	"time"

	"github.com/xtding233/card-detail/internal/stats"
)

// Store serves the current snapshot for one region and swaps it on Reload.
// Readers never block; a failed reload keeps the previous snapshot.
type Store struct {
	loader  *Loader
	region  string
	poolMax stats.GameMaxStats
	log     *slog.Logger

	cur atomic.Pointer[Snapshot]
}

// NewStore creates a store. poolMax may be nil when no card pool is loaded.
func NewStore(loader *Loader, region string, poolMax stats.GameMaxStats, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		loader:  loader,
		region:  region,
		poolMax: poolMax,
		log:     logger.With(slog.String("component", "max_stats"), slog.String("region", region)),
	}
}

// Reload re-reads the snapshot files from disk.
func (s *Store) Reload() error {
	s.loader.Invalidate()
	raw, err := s.loader.LoadMerged(s.region)
	if err != nil {
		s.log.Error("load snapshot failed", slog.Any("error", err))
		return err
	}
	snap, err := Resolve(raw, s.poolMax)
	if err != nil {
		s.log.Error("resolve snapshot failed", slog.Any("error", err))
		return err
	}
	s.cur.Store(&snap)
	s.log.Info("snapshot loaded",
		slog.String("version", snap.Version),
		slog.Int("smile", snap.MaxStats[stats.Smile]),
		slog.Int("pure", snap.MaxStats[stats.Pure]),
		slog.Int("cool", snap.MaxStats[stats.Cool]),
	)
	return nil
}

// Current returns a copy of the loaded snapshot.
func (s *Store) Current() (Snapshot, bool) {
	p := s.cur.Load()
	if p == nil {
		return Snapshot{}, false
	}
	snap := *p
	snap.MaxStats = maps.Clone(p.MaxStats)
	snap.Sources = maps.Clone(p.Sources)
	return snap, true
}

// MaxStats returns the current maxima, or stats.ErrMissingMaxStats when no
// snapshot has loaded yet.
func (s *Store) MaxStats() (stats.GameMaxStats, error) {
	snap, ok := s.Current()
	if !ok {
		return nil, fmt.Errorf("%w: no snapshot loaded for region %q", stats.ErrMissingMaxStats, s.region)
	}
	return snap.MaxStats, nil
}

// Watcher returns a FileWatcher that reloads the store when its files change.
func (s *Store) Watcher(interval time.Duration) *FileWatcher {
	return NewFileWatcher(s.loader.Paths(s.region), interval, func(path string) {
		s.log.Info("snapshot file changed", slog.String("path", path))
		_ = s.Reload()
	})
}
