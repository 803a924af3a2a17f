package report

import (
	"os"
	"sort"
	"strings"
)

// capturePrefixes is the fixed whitelist of environment variable name
// prefixes captured into a report. Anything else is never read, so the
// artifact cannot leak unrelated secrets.
var capturePrefixes = []string{
	"MCP",
	"CLAUDE",
	"NODE",
	"PATH",
	"HOME",
	"SHELL",
	"USER",
	"TERM",
	"LANG",
	"PWD",
	"TMPDIR",
}

// EnvSnapshot is a read-only, whitelist-filtered view of the process
// environment, captured once and passed explicitly into probes.
type EnvSnapshot struct {
	vars map[string]string
}

// CaptureEnvironment filters the ambient process environment through the
// capture whitelist.
func CaptureEnvironment() EnvSnapshot {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !whitelisted(name) {
			continue
		}
		vars[name] = value
	}
	return EnvSnapshot{vars: vars}
}

// NewEnvSnapshot builds a snapshot from explicit values, applying the same
// whitelist as CaptureEnvironment. Intended for tests.
func NewEnvSnapshot(vars map[string]string) EnvSnapshot {
	copied := make(map[string]string, len(vars))
	for name, value := range vars {
		if whitelisted(name) {
			copied[name] = value
		}
	}
	return EnvSnapshot{vars: copied}
}

func whitelisted(name string) bool {
	upper := strings.ToUpper(name)
	for _, prefix := range capturePrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// Get returns the value for name, or empty when not captured.
func (s EnvSnapshot) Get(name string) string {
	return s.vars[name]
}

// Names returns the captured variable names, sorted.
func (s EnvSnapshot) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of captured variables.
func (s EnvSnapshot) Len() int {
	return len(s.vars)
}
