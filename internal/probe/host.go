package probe

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

// HostInfoProbe reports basic host identity: hostname, user, working
// directory, and shell. Missing pieces are never environment-fatal, so the
// worst outcome is a warn.
type HostInfoProbe struct{}

// NewHostInfoProbe creates the host identity probe.
func NewHostInfoProbe() *HostInfoProbe {
	return &HostInfoProbe{}
}

// Name identifies the probe.
func (p *HostInfoProbe) Name() string { return "host-info" }

// Run collects host identity facts.
func (p *HostInfoProbe) Run(_ context.Context, sys inquiry.SystemInquiry, env report.EnvSnapshot) report.Finding {
	hostname, hostOK := sys.Hostname()
	if !hostOK {
		hostname = "unknown"
	}
	currentUser, ok := sys.CurrentUser()
	if !ok {
		currentUser = "unknown"
	}
	cwd, ok := sys.WorkingDirectory()
	if !ok {
		cwd = "unknown"
	}
	shell := "unknown"
	if s := env.Get("SHELL"); s != "" {
		shell = filepath.Base(s)
	}

	f := report.Finding{
		Name:   p.Name(),
		Status: report.StatusOK,
		Detail: fmt.Sprintf("hostname=%s user=%s cwd=%s shell=%s", hostname, currentUser, cwd, shell),
	}
	if !hostOK {
		f.Status = report.StatusWarn
		f.Detail = "hostname could not be resolved; " + f.Detail
	}
	return f
}
