// Package config holds the tool's settings loader and the MCP config file
// locator.
package config

import (
	"fmt"
	"time"
)

// Settings is the resolved tool configuration.
type Settings struct {
	// ProbeTimeout bounds each probe's wall-clock time.
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`

	// MatchPatterns are case-insensitive substrings identifying processes
	// related to the tool-execution service.
	MatchPatterns []string `mapstructure:"match_patterns"`

	// StuckPatterns are the narrower substrings that historically indicate
	// hung server processes. Used only for advisory text.
	StuckPatterns []string `mapstructure:"stuck_patterns"`

	// ArtifactDir is where report artifacts are written.
	ArtifactDir string `mapstructure:"artifact_dir"`

	// TailLines is how many kernel log lines the artifact captures.
	TailLines int `mapstructure:"tail_lines"`

	// NoColor disables styled output.
	NoColor bool `mapstructure:"no_color"`

	// Quiet suppresses non-essential output.
	Quiet bool `mapstructure:"quiet"`

	Log LogSettings `mapstructure:"log"`
}

// LogSettings configures diagnostic logging.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks settings for values the pipeline cannot run with.
func (s *Settings) Validate() error {
	if s.ProbeTimeout <= 0 {
		return fmt.Errorf("probe_timeout must be positive, got %s", s.ProbeTimeout)
	}
	if s.TailLines < 0 {
		return fmt.Errorf("tail_lines must not be negative, got %d", s.TailLines)
	}
	if len(s.MatchPatterns) == 0 {
		return fmt.Errorf("match_patterns must not be empty")
	}
	return nil
}
