package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/region snapshot files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "stats", "default.yaml")
}
func (p Paths) RegionPath(region string) string {
	return filepath.Join(p.BaseDir, "stats", "regions", region+".yaml")
}

// Loader reads YAML snapshots and merges default → region.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: region or "$default"
}

// NewLoader creates a snapshot loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// Paths returns the files the loader reads for region, default first.
func (l *Loader) Paths(region string) []string {
	out := []string{l.paths.DefaultPath()}
	if region != "" {
		out = append(out, l.paths.RegionPath(region))
	}
	return out
}

// LoadMerged loads default.yaml and overlays the region file (optional).
// It returns the merged RawConfig without validation.
func (l *Loader) LoadMerged(region string) (RawConfig, error) {
	key := region
	if key == "" {
		key = "$default"
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if region != "" {
		regCfg, err := readYAML(l.paths.RegionPath(region))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read region %s: %w", region, err)
		}
		merged = mergeRaw(defCfg, regCfg)
		if merged.Region == "" {
			merged.Region = region
		}
	}

	l.mu.Lock()
	l.cache["$default"] = defCfg
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// mergeRaw overlays b on a: set scalars and non-nil maxima in b win.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Region != "" {
		out.Region = b.Region
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if b.MaxStats.Smile != nil {
		out.MaxStats.Smile = b.MaxStats.Smile
	}
	if b.MaxStats.Pure != nil {
		out.MaxStats.Pure = b.MaxStats.Pure
	}
	if b.MaxStats.Cool != nil {
		out.MaxStats.Cool = b.MaxStats.Cool
	}
	return out
}
