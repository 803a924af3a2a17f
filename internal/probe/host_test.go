package probe

import (
	"context"
	"strings"
	"testing"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

func TestHostInfoProbeOKWhenHostnameResolves(t *testing.T) {
	sys := &fakeInquiry{hostname: "devbox", hostnameOK: true, user: "alex", userOK: true}
	env := report.NewEnvSnapshot(map[string]string{"SHELL": "/bin/zsh"})

	f := NewHostInfoProbe().Run(context.Background(), sys, env)
	if f.Status != report.StatusOK {
		t.Errorf("expected ok, got %s", f.Status)
	}
	if !strings.Contains(f.Detail, "hostname=devbox") {
		t.Errorf("expected hostname in detail: %q", f.Detail)
	}
	if !strings.Contains(f.Detail, "shell=zsh") {
		t.Errorf("expected shell base name in detail: %q", f.Detail)
	}
}

func TestHostInfoProbeWarnsWithoutHostname(t *testing.T) {
	f := NewHostInfoProbe().Run(context.Background(), &fakeInquiry{}, report.EnvSnapshot{})
	if f.Status != report.StatusWarn {
		t.Errorf("missing hostname is never fail: expected warn, got %s", f.Status)
	}
}
