package probe

import (
	"context"
	"strings"
	"testing"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

func resourceSys(freeMB, totalMB float64) *fakeInquiry {
	return &fakeInquiry{
		memory: inquiry.MemoryStats{TotalMB: totalMB, FreeMB: freeMB},
		memOK:  true,
		disk:   inquiry.DiskStats{TotalGB: 100, FreeGB: 50},
		diskOK: true,
	}
}

func TestResourceProbeLowMemoryWarns(t *testing.T) {
	f := NewResourceProbe("/").Run(context.Background(), resourceSys(50, 1000), report.EnvSnapshot{})
	if f.Status != report.StatusWarn {
		t.Errorf("5%% free memory: expected warn, got %s", f.Status)
	}
	if f.Remediation == "" {
		t.Error("expected a remediation for low memory")
	}
}

func TestResourceProbeHealthyMemoryOK(t *testing.T) {
	f := NewResourceProbe("/").Run(context.Background(), resourceSys(500, 1000), report.EnvSnapshot{})
	if f.Status != report.StatusOK {
		t.Errorf("50%% free memory: expected ok, got %s", f.Status)
	}
	if f.Remediation != "" {
		t.Errorf("unexpected remediation: %q", f.Remediation)
	}
}

func TestResourceProbeLowDiskWarns(t *testing.T) {
	sys := resourceSys(500, 1000)
	sys.disk = inquiry.DiskStats{TotalGB: 100, FreeGB: 2}

	f := NewResourceProbe("/").Run(context.Background(), sys, report.EnvSnapshot{})
	if f.Status != report.StatusWarn {
		t.Errorf("2%% free disk: expected warn, got %s", f.Status)
	}
	if !strings.Contains(f.Remediation, "disk") {
		t.Errorf("expected disk remediation, got %q", f.Remediation)
	}
}

func TestResourceProbeUnavailableFails(t *testing.T) {
	sys := resourceSys(500, 1000)
	sys.memOK = false

	f := NewResourceProbe("/").Run(context.Background(), sys, report.EnvSnapshot{})
	if f.Status != report.StatusFail {
		t.Errorf("unavailable memory stats: expected fail, got %s", f.Status)
	}
	if !strings.Contains(f.Detail, "memory") {
		t.Errorf("expected detail to name the missing query, got %q", f.Detail)
	}
}
