package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

// Advisor turns matched process records into remediation text. It is
// advisory-only: it suggests commands and never runs them, because
// automated termination risks destroying unrelated work.
type Advisor struct {
	stuckPatterns []string
}

// NewAdvisor creates an advisor over the stuck-process pattern set.
func NewAdvisor(stuckPatterns []string) *Advisor {
	return &Advisor{stuckPatterns: append([]string(nil), stuckPatterns...)}
}

// Suggestions returns one remediation string per stuck pattern that
// matched, in pattern order. Patterns match case-insensitively as
// substrings of the command line. No matches means an empty slice.
func (a *Advisor) Suggestions(records []report.ProcessRecord) []string {
	var out []string
	for _, pattern := range a.stuckPatterns {
		if pattern == "" {
			continue
		}
		lowered := strings.ToLower(pattern)
		var pids []string
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.CommandLine), lowered) {
				pids = append(pids, strconv.Itoa(int(r.PID)))
			}
		}
		if len(pids) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf(
			"pattern %q matches pid(s) %s; once work is saved, consider running: kill %s",
			pattern, strings.Join(pids, ", "), strings.Join(pids, " ")))
	}
	return out
}

// AdvisorProbe contributes the advisor's assessment as its own finding,
// consuming the records captured by the process probe that ran before it.
type AdvisorProbe struct {
	advisor *Advisor
	source  *ProcessProbe
}

// NewAdvisorProbe creates the advisory probe. Register it after source.
func NewAdvisorProbe(advisor *Advisor, source *ProcessProbe) *AdvisorProbe {
	return &AdvisorProbe{advisor: advisor, source: source}
}

// Name identifies the probe.
func (p *AdvisorProbe) Name() string { return "stuck-processes" }

// Run assesses the captured process records. Without process data the
// assessment is skipped, never silently reported as healthy.
func (p *AdvisorProbe) Run(_ context.Context, _ inquiry.SystemInquiry, _ report.EnvSnapshot) report.Finding {
	if !p.source.Enumerated() {
		return report.Finding{
			Name:   p.Name(),
			Status: report.StatusSkipped,
			Detail: "process list unavailable, advisory skipped",
		}
	}

	suggestions := p.advisor.Suggestions(p.source.Records())
	if len(suggestions) == 0 {
		return report.Finding{
			Name:   p.Name(),
			Status: report.StatusOK,
			Detail: "no stuck processes detected",
		}
	}
	return report.Finding{
		Name:        p.Name(),
		Status:      report.StatusWarn,
		Detail:      fmt.Sprintf("%d stuck-pattern match group(s) found", len(suggestions)),
		Remediation: strings.Join(suggestions, "; "),
	}
}
