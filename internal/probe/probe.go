// Package probe implements the diagnostic pipeline: isolated checks
// executed strictly in registration order, each bounded by a timeout and a
// panic boundary, so one broken probe can never abort the run.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

// Probe is one isolated diagnostic check producing exactly one finding.
// Implementations must treat sys and env as read-only and must not touch
// shared state; the runner owns all sequencing.
type Probe interface {
	// Name identifies the probe and its finding.
	Name() string
	// Run performs the check. ctx carries the probe's deadline.
	Run(ctx context.Context, sys inquiry.SystemInquiry, env report.EnvSnapshot) report.Finding
}

// committer is implemented by probes that publish state for probes running
// after them. The runner commits only results that arrived inside the
// deadline, on its own goroutine, so an abandoned run can never publish.
type committer interface {
	commit()
}

// Runner executes registered probes sequentially in registration order.
// Each probe gets a fresh deadline; a probe that overruns it is abandoned
// (its goroutine's eventual result is discarded, nothing is killed at the
// OS level) and a synthetic timeout finding takes its place.
type Runner struct {
	probes  []Probe
	timeout time.Duration
	logger  *slog.Logger
}

// NewRunner creates a runner with the given per-probe timeout.
func NewRunner(timeout time.Duration, logger *slog.Logger) *Runner {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Runner{timeout: timeout, logger: logger}
}

// Register appends a probe. Registration order is the execution order and
// the order of the resulting findings; report readers rely on it.
func (r *Runner) Register(p Probe) {
	r.probes = append(r.probes, p)
}

// Len returns the number of registered probes.
func (r *Runner) Len() int {
	return len(r.probes)
}

// RunAll executes every registered probe and returns one finding per probe,
// in registration order, regardless of individual outcomes.
func (r *Runner) RunAll(ctx context.Context, sys inquiry.SystemInquiry, env report.EnvSnapshot) []report.Finding {
	findings := make([]report.Finding, 0, len(r.probes))
	for _, p := range r.probes {
		started := time.Now()
		f := r.runOne(ctx, p, sys, env)
		if r.logger != nil {
			r.logger.Debug("probe finished",
				"probe", p.Name(),
				"status", string(f.Status),
				"elapsed", time.Since(started).Round(time.Millisecond),
			)
		}
		findings = append(findings, f)
	}
	return findings
}

func (r *Runner) runOne(ctx context.Context, p Probe, sys inquiry.SystemInquiry, env report.EnvSnapshot) report.Finding {
	pctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan report.Finding, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- report.Finding{
					Name:   p.Name(),
					Status: report.StatusFail,
					Detail: fmt.Sprintf("probe panicked: %v", rec),
				}
			}
		}()
		done <- p.Run(pctx, sys, env)
	}()

	select {
	case f := <-done:
		if c, ok := p.(committer); ok {
			c.commit()
		}
		// A probe cannot misreport another probe's name.
		f.Name = p.Name()
		if !f.Status.Valid() {
			f.Status = report.StatusFail
		}
		return f
	case <-pctx.Done():
		return report.Finding{
			Name:   p.Name(),
			Status: report.StatusFail,
			Detail: fmt.Sprintf("timeout after %s", r.timeout),
		}
	}
}
