package game

import (
	"fmt"
	"strings"

	"github.com/xtding233/card-detail/internal/stats"
)

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	for _, a := range stats.Attributes {
		if v := cfg.MaxStats.get(a); v != nil && *v <= 0 {
			errs = append(errs, fmt.Sprintf("max_stats.%s must be > 0", strings.ToLower(string(a))))
		}
	}
	if strings.ContainsAny(cfg.Region, `/\`) {
		errs = append(errs, "region must not contain path separators")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Resolve turns a merged config into a Snapshot. Attributes the config leaves
// unset take the maximum found in the card pool; nothing else is filled in,
// so a snapshot that still lacks a value fails with stats.ErrMissingMaxStats.
func Resolve(cfg RawConfig, poolMax stats.GameMaxStats) (Snapshot, error) {
	if err := ValidateRaw(cfg); err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Version:  cfg.Version,
		Region:   cfg.Region,
		MaxStats: stats.GameMaxStats{},
		Sources:  map[stats.Attribute]Source{},
	}
	for _, a := range stats.Attributes {
		if v := cfg.MaxStats.get(a); v != nil {
			snap.MaxStats[a] = *v
			snap.Sources[a] = SourceConfig
			continue
		}
		if v, ok := poolMax[a]; ok && v > 0 {
			snap.MaxStats[a] = v
			snap.Sources[a] = SourcePool
		}
	}
	if err := snap.MaxStats.Validate(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
