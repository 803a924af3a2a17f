package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

func TestScratchWriteProbeOKAndCleansUp(t *testing.T) {
	dir := t.TempDir()

	f := NewScratchWriteProbe(dir).Run(context.Background(), &fakeInquiry{}, report.EnvSnapshot{})
	if f.Status != report.StatusOK {
		t.Fatalf("expected ok, got %s (%s)", f.Status, f.Detail)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading scratch dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected scratch file removed, found %d entries", len(entries))
	}
}

func TestScratchWriteProbeWarnsOnUnwritableDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	f := NewScratchWriteProbe(missing).Run(context.Background(), &fakeInquiry{}, report.EnvSnapshot{})
	if f.Status != report.StatusWarn {
		t.Errorf("expected warn, got %s", f.Status)
	}
	if f.Remediation == "" {
		t.Error("expected a permissions remediation")
	}
}
