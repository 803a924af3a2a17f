package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

// ScratchWriteProbe verifies the filesystem accepts writes by creating,
// reading back, and removing one small file. Failure is a warn: a broken
// scratch directory is suspicious, not fatal, and the probe leaves nothing
// behind either way.
type ScratchWriteProbe struct {
	dir string
}

// NewScratchWriteProbe creates the probe writing under dir (os.TempDir
// when empty).
func NewScratchWriteProbe(dir string) *ScratchWriteProbe {
	if dir == "" {
		dir = os.TempDir()
	}
	return &ScratchWriteProbe{dir: dir}
}

// Name identifies the probe.
func (p *ScratchWriteProbe) Name() string { return "scratch-write" }

// Run performs the write/read/delete round trip.
func (p *ScratchWriteProbe) Run(_ context.Context, _ inquiry.SystemInquiry, _ report.EnvSnapshot) report.Finding {
	warn := func(stage string, err error) report.Finding {
		return report.Finding{
			Name:        p.Name(),
			Status:      report.StatusWarn,
			Detail:      fmt.Sprintf("%s in %s failed: %v", stage, p.dir, err),
			Remediation: "check file permissions and free space on " + p.dir,
		}
	}

	path := filepath.Join(p.dir, fmt.Sprintf(".mcpdoctor-scratch-%d", os.Getpid()))
	const payload = "mcp-doctor scratch probe"

	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		return warn("write", err)
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return warn("read-back", err)
	}
	if string(data) != payload {
		return warn("read-back", fmt.Errorf("content mismatch"))
	}
	if err := os.Remove(path); err != nil {
		return warn("cleanup", err)
	}

	return report.Finding{
		Name:   p.Name(),
		Status: report.StatusOK,
		Detail: "filesystem writable at " + p.dir,
	}
}
