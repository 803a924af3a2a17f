package probe

import (
	"context"
	"strings"
	"testing"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
)

func TestAdvisorNoMatchesEmptySuggestions(t *testing.T) {
	advisor := NewAdvisor([]string{"mcp-server"})
	suggestions := advisor.Suggestions([]report.ProcessRecord{
		{PID: 2, CommandLine: "bash", MatchedPattern: "bash"},
	})
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", suggestions)
	}
}

func TestAdvisorOneMatchReferencesPID(t *testing.T) {
	advisor := NewAdvisor([]string{"mcp-server"})
	suggestions := advisor.Suggestions([]report.ProcessRecord{
		{PID: 4242, CommandLine: "node MCP-Server --stdio", MatchedPattern: "mcp"},
	})

	// Exactly one per matched pattern.
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion line, got %d: %v", len(suggestions), suggestions)
	}
	if !strings.Contains(suggestions[0], "4242") {
		t.Errorf("expected suggestion to reference pid 4242: %q", suggestions[0])
	}
	if !strings.Contains(suggestions[0], "kill") {
		t.Errorf("expected a kill suggestion: %q", suggestions[0])
	}
}

func TestAdvisorGroupsPIDsPerPattern(t *testing.T) {
	advisor := NewAdvisor([]string{"mcp-server"})
	suggestions := advisor.Suggestions([]report.ProcessRecord{
		{PID: 10, CommandLine: "node mcp-server a"},
		{PID: 11, CommandLine: "node mcp-server b"},
	})
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion line, got %d", len(suggestions))
	}
	if !strings.Contains(suggestions[0], "kill 10 11") {
		t.Errorf("expected grouped kill command: %q", suggestions[0])
	}
}

func TestAdvisorProbeOKWithoutMatches(t *testing.T) {
	source := NewProcessProbe([]string{"mcp"})
	sys := &fakeInquiry{procs: []inquiry.Process{{PID: 2, CommandLine: "bash"}}, procsOK: true}
	source.Run(context.Background(), sys, report.EnvSnapshot{})
	source.commit()

	p := NewAdvisorProbe(NewAdvisor([]string{"mcp-server"}), source)
	f := p.Run(context.Background(), sys, report.EnvSnapshot{})

	if f.Status != report.StatusOK {
		t.Errorf("expected ok, got %s", f.Status)
	}
	if f.Remediation != "" {
		t.Errorf("expected no remediation, got %q", f.Remediation)
	}
}

func TestAdvisorProbeWarnsOnStuckMatch(t *testing.T) {
	source := NewProcessProbe([]string{"mcp"})
	sys := &fakeInquiry{
		procs:   []inquiry.Process{{PID: 9, CommandLine: "node mcp-server"}},
		procsOK: true,
	}
	source.Run(context.Background(), sys, report.EnvSnapshot{})
	source.commit()

	p := NewAdvisorProbe(NewAdvisor([]string{"mcp-server"}), source)
	f := p.Run(context.Background(), sys, report.EnvSnapshot{})

	if f.Status != report.StatusWarn {
		t.Errorf("expected warn, got %s", f.Status)
	}
	if !strings.Contains(f.Remediation, "9") {
		t.Errorf("expected remediation to reference pid 9: %q", f.Remediation)
	}
}

func TestAdvisorProbeSkippedWithoutProcessData(t *testing.T) {
	source := NewProcessProbe([]string{"mcp"})
	source.Run(context.Background(), &fakeInquiry{}, report.EnvSnapshot{})
	source.commit()

	p := NewAdvisorProbe(NewAdvisor([]string{"mcp-server"}), source)
	f := p.Run(context.Background(), &fakeInquiry{}, report.EnvSnapshot{})

	if f.Status != report.StatusSkipped {
		t.Errorf("expected skipped when enumeration failed, got %s", f.Status)
	}
}
