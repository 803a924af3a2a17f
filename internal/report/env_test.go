package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvSnapshotFiltersByWhitelist(t *testing.T) {
	snap := NewEnvSnapshot(map[string]string{
		"MCP_TIMEOUT":    "30",
		"CLAUDE_CONFIG":  "/tmp/c.json",
		"PATH":           "/usr/bin",
		"AWS_SECRET_KEY": "should-not-appear",
		"DATABASE_URL":   "should-not-appear",
	})

	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, "30", snap.Get("MCP_TIMEOUT"))
	assert.Empty(t, snap.Get("AWS_SECRET_KEY"))
	assert.Empty(t, snap.Get("DATABASE_URL"))
}

func TestEnvSnapshotNamesSorted(t *testing.T) {
	snap := NewEnvSnapshot(map[string]string{
		"SHELL":    "/bin/bash",
		"HOME":     "/home/x",
		"MCP_MODE": "stdio",
	})
	assert.Equal(t, []string{"HOME", "MCP_MODE", "SHELL"}, snap.Names())
}

func TestCaptureEnvironmentUsesWhitelist(t *testing.T) {
	t.Setenv("MCP_TEST_CAPTURED", "x")
	t.Setenv("ZZZ_UNRELATED", "y")

	snap := CaptureEnvironment()
	assert.Equal(t, "x", snap.Get("MCP_TEST_CAPTURED"))
	assert.Empty(t, snap.Get("ZZZ_UNRELATED"))
}

func TestEnvSnapshotGetMissing(t *testing.T) {
	snap := NewEnvSnapshot(nil)
	assert.Empty(t, snap.Get("PATH"))
	assert.Zero(t, snap.Len())
}
