package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// SupportsStyling reports whether styled output should be used for w.
// Styling requires a terminal and is disabled by the noColor flag, the
// NO_COLOR convention, and dumb terminals.
func SupportsStyling(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
