package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlainRendererPassesTextThrough(t *testing.T) {
	r := NewRenderer(false)

	if got := r.Title("summary"); got != "summary" {
		t.Fatalf("Title = %q, want %q", got, "summary")
	}
	if got := r.Section("Recovery suggestions"); got != "Recovery suggestions" {
		t.Fatalf("Section = %q", got)
	}
	if got := r.Muted("saved"); got != "saved" {
		t.Fatalf("Muted = %q", got)
	}
	if got := r.StatusTag("warn"); got != "[warn]" {
		t.Fatalf("StatusTag = %q, want %q", got, "[warn]")
	}
}

func TestStyledRendererKeepsContent(t *testing.T) {
	r := NewRenderer(true)
	if !r.Styled() {
		t.Fatal("Styled() = false for styled renderer")
	}
	// Escape codes may or may not be emitted depending on the environment,
	// but the semantic content always survives.
	if !strings.Contains(r.StatusTag("fail"), "[fail]") {
		t.Fatalf("StatusTag lost content: %q", r.StatusTag("fail"))
	}
	if !strings.Contains(r.Title("title"), "title") {
		t.Fatalf("Title lost content: %q", r.Title("title"))
	}
}

func TestSupportsStyling(t *testing.T) {
	var buf bytes.Buffer

	if SupportsStyling(&buf, false) {
		t.Fatal("non-file writer must not report styling support")
	}
	if SupportsStyling(&buf, true) {
		t.Fatal("noColor flag must force plain output")
	}

	t.Setenv("NO_COLOR", "1")
	if SupportsStyling(&buf, false) {
		t.Fatal("NO_COLOR must force plain output")
	}
}
