package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

// Thresholds below which free resources trigger a warn finding.
const (
	lowMemoryFraction = 0.10
	lowDiskFraction   = 0.05
)

// ResourceProbe checks memory and disk headroom. Low headroom warns;
// only an unavailable underlying query fails.
type ResourceProbe struct {
	diskPath string
}

// NewResourceProbe creates a resource probe checking the filesystem at
// diskPath (the root disk when empty).
func NewResourceProbe(diskPath string) *ResourceProbe {
	if diskPath == "" {
		diskPath = inquiry.RootDiskPath()
	}
	return &ResourceProbe{diskPath: diskPath}
}

// Name identifies the probe.
func (p *ResourceProbe) Name() string { return "resources" }

// Run queries memory and disk stats and applies the headroom thresholds.
func (p *ResourceProbe) Run(_ context.Context, sys inquiry.SystemInquiry, _ report.EnvSnapshot) report.Finding {
	memStats, memOK := sys.MemoryStats()
	diskStats, diskOK := sys.DiskStats(p.diskPath)

	if !memOK || !diskOK {
		var missing []string
		if !memOK {
			missing = append(missing, "memory")
		}
		if !diskOK {
			missing = append(missing, "disk")
		}
		return report.Finding{
			Name:   p.Name(),
			Status: report.StatusFail,
			Detail: fmt.Sprintf("%s stats unavailable", strings.Join(missing, " and ")),
		}
	}

	detail := fmt.Sprintf("memory %.0f/%.0f MB free, disk %.1f/%.1f GB free at %s",
		memStats.FreeMB, memStats.TotalMB, diskStats.FreeGB, diskStats.TotalGB, p.diskPath)

	var warnings, remedies []string
	if memStats.TotalMB > 0 && memStats.FreeMB < memStats.TotalMB*lowMemoryFraction {
		warnings = append(warnings, fmt.Sprintf("free memory below %.0f%% of total", lowMemoryFraction*100))
		remedies = append(remedies, "close other applications to free memory")
	}
	if diskStats.TotalGB > 0 && diskStats.FreeGB < diskStats.TotalGB*lowDiskFraction {
		warnings = append(warnings, fmt.Sprintf("free disk below %.0f%% of total", lowDiskFraction*100))
		remedies = append(remedies, "free up disk space (at least 1GB recommended)")
	}

	if len(warnings) > 0 {
		return report.Finding{
			Name:        p.Name(),
			Status:      report.StatusWarn,
			Detail:      detail + "; " + strings.Join(warnings, "; "),
			Remediation: strings.Join(remedies, "; "),
		}
	}
	return report.Finding{
		Name:   p.Name(),
		Status: report.StatusOK,
		Detail: detail,
	}
}
