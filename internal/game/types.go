// types.go
package game

import "github.com/xtding233/card-detail/internal/stats"

// RawConfig is a max-stats snapshot file as loaded from YAML.
type RawConfig struct {
	Version  string         `yaml:"version"`
	Region   string         `yaml:"region,omitempty"`
	MaxStats MaxStatsConfig `yaml:"max_stats"`
	Notes    string         `yaml:"notes,omitempty"`
}

// MaxStatsConfig holds the per-attribute maxima; nil means "not set here".
type MaxStatsConfig struct {
	Smile *int `yaml:"smile,omitempty"`
	Pure  *int `yaml:"pure,omitempty"`
	Cool  *int `yaml:"cool,omitempty"`
}

func (m MaxStatsConfig) get(a stats.Attribute) *int {
	switch a {
	case stats.Smile:
		return m.Smile
	case stats.Pure:
		return m.Pure
	case stats.Cool:
		return m.Cool
	}
	return nil
}

// Source tells where a snapshot value came from.
type Source string

const (
	SourceConfig Source = "config"
	SourcePool   Source = "pool"
)

// Snapshot is the resolved, validated game-wide maximum for one region.
type Snapshot struct {
	Version  string                     `json:"version"`
	Region   string                     `json:"region"`
	MaxStats stats.GameMaxStats         `json:"max_stats"`
	Sources  map[stats.Attribute]Source `json:"sources"`
}
