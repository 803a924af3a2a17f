package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

// maxCommandLine truncates long command lines in finding details.
const maxCommandLine = 200

// ProcessProbe enumerates the process table and matches command lines
// against the configured patterns (case-insensitive substring). Matched
// records are kept for the advisor probe that runs after it.
type ProcessProbe struct {
	patterns []string

	// pending is written by Run and published by commit. The runner calls
	// commit only for runs that finished inside the deadline, so a write
	// from an abandoned goroutine stays invisible to later probes.
	pending processResult

	// Committed result of the last run, read by the advisor probe.
	records    []report.ProcessRecord
	enumerated bool
}

type processResult struct {
	records    []report.ProcessRecord
	enumerated bool
}

// NewProcessProbe creates a process probe matching the given patterns.
func NewProcessProbe(patterns []string) *ProcessProbe {
	return &ProcessProbe{patterns: append([]string(nil), patterns...)}
}

// Name identifies the probe.
func (p *ProcessProbe) Name() string { return "mcp-processes" }

// Run enumerates and matches processes. Enumeration failure is a fail
// finding in its own right; it is never reported as "no matches".
func (p *ProcessProbe) Run(_ context.Context, sys inquiry.SystemInquiry, _ report.EnvSnapshot) report.Finding {
	p.pending = processResult{}

	procs, ok := sys.ListProcesses()
	if !ok {
		return report.Finding{
			Name:        p.Name(),
			Status:      report.StatusFail,
			Detail:      "process enumeration unavailable",
			Remediation: "re-run the diagnostic with sufficient privileges to read the process table",
		}
	}
	records := MatchProcesses(procs, p.patterns)
	p.pending = processResult{records: records, enumerated: true}

	detail := fmt.Sprintf("%d of %d processes match patterns [%s]",
		len(records), len(procs), strings.Join(p.patterns, ", "))
	for _, r := range records {
		detail += fmt.Sprintf("; pid=%d %s", r.PID, truncate(r.CommandLine, maxCommandLine))
	}

	return report.Finding{
		Name:   p.Name(),
		Status: report.StatusOK,
		Detail: detail,
	}
}

// commit publishes the pending result. Called by the runner only for runs
// that completed within the deadline.
func (p *ProcessProbe) commit() {
	p.records = p.pending.records
	p.enumerated = p.pending.enumerated
}

// Records returns the matches captured by the last run.
func (p *ProcessProbe) Records() []report.ProcessRecord {
	return append([]report.ProcessRecord(nil), p.records...)
}

// Enumerated reports whether the last run managed to list processes.
func (p *ProcessProbe) Enumerated() bool {
	return p.enumerated
}

// MatchProcesses filters the process list by case-insensitive substring
// match over the command line. The first matching pattern is recorded.
func MatchProcesses(procs []inquiry.Process, patterns []string) []report.ProcessRecord {
	var out []report.ProcessRecord
	for _, proc := range procs {
		lower := strings.ToLower(proc.CommandLine)
		for _, pattern := range patterns {
			if pattern == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(pattern)) {
				out = append(out, report.ProcessRecord{
					PID:            proc.PID,
					CommandLine:    proc.CommandLine,
					MatchedPattern: pattern,
				})
				break
			}
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
