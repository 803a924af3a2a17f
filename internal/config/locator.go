package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/fsutil"
)

// PreviewCap bounds how many bytes of a located config file are read.
const PreviewCap = 500

// Location describes the outcome of a config file search.
type Location struct {
	// Path is the first candidate that exists, or empty when none do.
	Path string
	// Exists reports whether any candidate was found.
	Exists bool
	// Readable is false when the found file could not be opened or read.
	Readable bool
	// Preview holds up to PreviewCap bytes of the found file.
	Preview []byte
	// Truncated reports whether the preview was cut at the cap.
	Truncated bool
}

// Locator searches an ordered candidate list for the service's config file.
// Order encodes platform priority; the first existing path wins and the
// search stops there.
type Locator struct {
	candidates []string
	cap        int
}

// NewLocator creates a locator over the given candidates. With none given
// it uses the platform-ordered default list.
func NewLocator(candidates ...string) *Locator {
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}
	return &Locator{candidates: append([]string(nil), candidates...), cap: PreviewCap}
}

// Candidates returns the search list in priority order.
func (l *Locator) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

// Locate walks the candidates in order and returns the first existing one
// with a bounded content preview. An unreadable file is still a found file;
// the caller decides how loudly to complain.
func (l *Locator) Locate() Location {
	for _, candidate := range l.candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		loc := Location{Path: candidate, Exists: true}
		preview, truncated, err := fsutil.ReadFileCapped(candidate, l.cap)
		if err != nil {
			return loc
		}
		loc.Readable = true
		loc.Preview = preview
		loc.Truncated = truncated
		return loc
	}
	return Location{}
}

// DefaultCandidates returns the well-known config file locations, ordered
// so the current platform's conventional path is tried first.
func DefaultCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	darwin := filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
	xdg := filepath.Join(home, ".config", "claude", "claude_desktop_config.json")
	windows := filepath.Join(home, "AppData", "Roaming", "Claude", "claude_desktop_config.json")

	switch runtime.GOOS {
	case "darwin":
		return []string{darwin, xdg, windows}
	case "windows":
		return []string{windows, xdg, darwin}
	default:
		return []string{xdg, darwin, windows}
	}
}
