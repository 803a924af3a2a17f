package config

import "time"

// Defaults mirror the behavior a bare invocation should have: scan for the
// service's processes, 5s per probe, artifact next to the caller.
const (
	DefaultProbeTimeout = 5 * time.Second
	DefaultTailLines    = 50
)

// DefaultMatchPatterns finds processes belonging to the tool-execution
// service and its usual hosts.
func DefaultMatchPatterns() []string {
	return []string{"mcp", "claude", "node"}
}

// DefaultStuckPatterns narrows matches to processes that historically hang.
func DefaultStuckPatterns() []string {
	return []string{"mcp-server", "mcp_server"}
}

// DefaultSettings returns the settings a bare invocation resolves to.
func DefaultSettings() *Settings {
	return &Settings{
		ProbeTimeout:  DefaultProbeTimeout,
		MatchPatterns: DefaultMatchPatterns(),
		StuckPatterns: DefaultStuckPatterns(),
		ArtifactDir:   ".",
		TailLines:     DefaultTailLines,
		Log: LogSettings{
			Level:  "info",
			Format: "auto",
		},
	}
}
