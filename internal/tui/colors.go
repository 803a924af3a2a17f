// Package tui provides severity-styled terminal rendering with a plain-text
// fallback. Styling is cosmetic only: the plain renderer emits the same
// semantic content, minus the escape codes.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Status colors
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue

	// Neutral colors
	ColorText      = lipgloss.Color("#E5E7EB") // Light gray
	ColorTextMuted = lipgloss.Color("#9CA3AF") // Muted gray
)
