package report

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"
)

// The artifact is a fixed sectioned text layout: a header, one line per
// finding, the filtered environment, a system info block, and the kernel
// log tail. It is written for humans first but stays machine-parseable,
// so a report can be read back from its artifact.

const (
	artifactHeader    = "=== mcp-doctor diagnostic report ==="
	sectionFindings   = "--- findings ---"
	sectionEnv        = "--- environment ---"
	sectionSystem     = "--- system ---"
	sectionKernelTail = "--- kernel log tail ---"
	remediationPrefix = "    remediation: "
)

// MarshalArtifact renders a report into the artifact text format.
func MarshalArtifact(r *Report) []byte {
	var b strings.Builder

	b.WriteString(artifactHeader + "\n")
	fmt.Fprintf(&b, "run_id: %s\n", r.runID)
	fmt.Fprintf(&b, "generated_at: %s\n", r.generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "host: %s\n", singleLine(r.host))
	fmt.Fprintf(&b, "platform: %s\n", singleLine(r.platform))
	b.WriteString("\n" + sectionFindings + "\n")
	for _, f := range r.findings {
		fmt.Fprintf(&b, "[%s] %s: %s\n", f.Status, singleLine(f.Name), singleLine(f.Detail))
		if f.Remediation != "" {
			b.WriteString(remediationPrefix + singleLine(f.Remediation) + "\n")
		}
	}

	b.WriteString("\n" + sectionEnv + "\n")
	for _, name := range r.env.Names() {
		fmt.Fprintf(&b, "%s=%s\n", name, singleLine(r.env.Get(name)))
	}

	b.WriteString("\n" + sectionSystem + "\n")
	for _, line := range r.systemInfo {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + sectionKernelTail + "\n")
	if len(r.kernelTail) == 0 {
		note := r.kernelNote
		if note == "" {
			note = "kernel log tail omitted"
		}
		b.WriteString(note + "\n")
	}
	for _, line := range r.kernelTail {
		b.WriteString(line + "\n")
	}

	return []byte(b.String())
}

// ParseArtifact reads an artifact back into a report. Only the semantic
// content is restored: run id, timestamp, host, platform, findings in
// order, and the environment section.
func ParseArtifact(data []byte) (*Report, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != artifactHeader {
		return nil, fmt.Errorf("parsing artifact: missing header")
	}

	rep := &Report{env: EnvSnapshot{vars: map[string]string{}}}
	section := ""

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch trimmed {
		case sectionFindings, sectionEnv, sectionSystem, sectionKernelTail:
			section = trimmed
			continue
		}
		if trimmed == "" && section != sectionKernelTail {
			continue
		}

		switch section {
		case "":
			if err := parseHeaderLine(rep, trimmed); err != nil {
				return nil, err
			}
		case sectionFindings:
			if strings.HasPrefix(line, remediationPrefix) {
				if len(rep.findings) == 0 {
					return nil, fmt.Errorf("parsing artifact: remediation before any finding")
				}
				rep.findings[len(rep.findings)-1].Remediation = strings.TrimPrefix(line, remediationPrefix)
				continue
			}
			f, err := parseFindingLine(trimmed)
			if err != nil {
				return nil, err
			}
			rep.findings = append(rep.findings, f)
		case sectionEnv:
			name, value, ok := strings.Cut(trimmed, "=")
			if ok {
				rep.env.vars[name] = value
			}
		case sectionSystem:
			rep.systemInfo = append(rep.systemInfo, trimmed)
		case sectionKernelTail:
			rep.kernelTail = append(rep.kernelTail, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parsing artifact: %w", err)
	}
	if rep.generatedAt.IsZero() {
		return nil, fmt.Errorf("parsing artifact: missing generated_at")
	}
	if len(rep.findings) == 0 {
		return nil, fmt.Errorf("parsing artifact: no findings")
	}
	return rep, nil
}

func parseHeaderLine(rep *Report, line string) error {
	key, value, ok := strings.Cut(line, ": ")
	if !ok {
		return fmt.Errorf("parsing artifact: malformed header line %q", line)
	}
	switch key {
	case "run_id":
		rep.runID = value
	case "generated_at":
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("parsing artifact: bad timestamp %q: %w", value, err)
		}
		rep.generatedAt = ts.UTC()
	case "host":
		rep.host = value
	case "platform":
		rep.platform = value
	}
	return nil
}

func parseFindingLine(line string) (Finding, error) {
	if !strings.HasPrefix(line, "[") {
		return Finding{}, fmt.Errorf("parsing artifact: malformed finding line %q", line)
	}
	end := strings.Index(line, "] ")
	if end < 0 {
		return Finding{}, fmt.Errorf("parsing artifact: malformed finding line %q", line)
	}
	status := Status(line[1:end])
	if !status.Valid() {
		return Finding{}, fmt.Errorf("parsing artifact: unknown status %q", status)
	}
	rest := line[end+2:]
	name, detail, ok := strings.Cut(rest, ": ")
	if !ok {
		name = strings.TrimSuffix(rest, ":")
	}
	return Finding{Name: name, Status: status, Detail: detail}, nil
}

// singleLine collapses newlines so free-text fields cannot break the
// line-oriented artifact format.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "; ")
	s = strings.ReplaceAll(s, "\n", "; ")
	return s
}
