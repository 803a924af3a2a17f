package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
)

// Report is the immutable aggregate of one diagnostic run. All fields are
// unexported; accessors return copies, so a constructed report can never be
// mutated by consumers.
type Report struct {
	runID       string
	generatedAt time.Time
	host        string
	platform    string
	findings    []Finding
	env         EnvSnapshot
	systemInfo  []string
	kernelTail  []string
	kernelNote  string
}

// New constructs a report. It is the only place a diagnostic run can fail
// hard: without a report there is nothing to write, so construction errors
// abort the run.
func New(host, platform string, findings []Finding, env EnvSnapshot) (*Report, error) {
	if len(findings) == 0 {
		return nil, fmt.Errorf("constructing report: no findings")
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("constructing report: %w", err)
	}
	return &Report{
		runID:       id.String(),
		generatedAt: time.Now().UTC().Truncate(time.Second),
		host:        host,
		platform:    platform,
		findings:    append([]Finding(nil), findings...),
		env:         env,
	}, nil
}

// RunID returns the unique identifier of this run.
func (r *Report) RunID() string { return r.runID }

// GeneratedAt returns the report timestamp (UTC, second precision).
func (r *Report) GeneratedAt() time.Time { return r.generatedAt }

// Host returns the host name the report was generated on.
func (r *Report) Host() string { return r.host }

// Platform returns the OS/kernel description.
func (r *Report) Platform() string { return r.platform }

// Findings returns the findings in probe registration order.
func (r *Report) Findings() []Finding {
	return append([]Finding(nil), r.findings...)
}

// Env returns the whitelist-filtered environment snapshot.
func (r *Report) Env() EnvSnapshot { return r.env }

// SystemInfo returns the rendered system information lines.
func (r *Report) SystemInfo() []string {
	return append([]string(nil), r.systemInfo...)
}

// KernelTail returns the captured kernel log lines.
func (r *Report) KernelTail() []string {
	return append([]string(nil), r.kernelTail...)
}

// KernelNote returns a note explaining an absent kernel tail, if any.
func (r *Report) KernelNote() string { return r.kernelNote }

// Remediations returns the non-empty remediation texts in finding order.
func (r *Report) Remediations() []string {
	var out []string
	for _, f := range r.findings {
		if f.Remediation != "" {
			out = append(out, f.Remediation)
		}
	}
	return out
}

// Aggregator assembles reports from finding sequences plus host context
// collected through the inquiry interface.
type Aggregator struct {
	sys       inquiry.SystemInquiry
	tailLines int
}

// NewAggregator creates an aggregator reading host context from sys.
func NewAggregator(sys inquiry.SystemInquiry, tailLines int) *Aggregator {
	if tailLines < 0 {
		tailLines = 0
	}
	return &Aggregator{sys: sys, tailLines: tailLines}
}

// Aggregate builds the immutable report for one completed probe run.
func (a *Aggregator) Aggregate(findings []Finding, env EnvSnapshot) (*Report, error) {
	host := "unknown"
	if name, ok := a.sys.Hostname(); ok {
		host = name
	}
	platform := ""
	if p, ok := a.sys.Platform(); ok {
		platform = p
	}

	rep, err := New(host, platform, findings, env)
	if err != nil {
		return nil, err
	}

	rep.systemInfo = a.systemInfo()

	if a.tailLines > 0 {
		if tail, ok := a.sys.TailKernelLog(a.tailLines); ok {
			rep.kernelTail = tail
		} else {
			rep.kernelNote = "kernel log unavailable on this system"
		}
	}

	return rep, nil
}

func (a *Aggregator) systemInfo() []string {
	var lines []string
	if product, ok := a.sys.ProductName(); ok {
		lines = append(lines, "product: "+product)
	}
	if stats, ok := a.sys.MemoryStats(); ok {
		lines = append(lines, fmt.Sprintf("memory: %.0f MB free of %.0f MB", stats.FreeMB, stats.TotalMB))
	}
	if stats, ok := a.sys.DiskStats(inquiry.RootDiskPath()); ok {
		lines = append(lines, fmt.Sprintf("disk: %.1f GB free of %.1f GB", stats.FreeGB, stats.TotalGB))
	}
	if avg, ok := a.sys.LoadAverages(); ok {
		lines = append(lines, fmt.Sprintf("load: %.2f %.2f %.2f", avg.Load1, avg.Load5, avg.Load15))
	}
	return lines
}
