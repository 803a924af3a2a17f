// Package report defines the diagnostic data model: findings, the immutable
// report aggregate, the environment snapshot, and the artifact writer/parser.
package report

// Status classifies a single finding.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "ok"
	// StatusWarn means the check found a suspicious but non-fatal state.
	StatusWarn Status = "warn"
	// StatusFail means the check could not complete or found a broken state.
	StatusFail Status = "fail"
	// StatusSkipped means the check declined to run; it still contributes
	// a finding so the findings count always matches the probe count.
	StatusSkipped Status = "skipped"
)

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOK, StatusWarn, StatusFail, StatusSkipped:
		return true
	}
	return false
}

// Finding is the outcome of one probe. It is immutable once created:
// probes return it by value and nothing downstream modifies it.
type Finding struct {
	Name        string
	Status      Status
	Detail      string
	Remediation string
}

// ProcessRecord is a process-table entry that matched a diagnostic pattern.
// It lives only inside the pipeline; the artifact embeds a text summary.
type ProcessRecord struct {
	PID            int32
	CommandLine    string
	MatchedPattern string
}
