package tui

import "github.com/charmbracelet/lipgloss"

// Base styles
var (
	// TitleStyle is the style for the summary title.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	// SectionStyle is the style for section headers.
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// MutedStyle is the style for secondary information.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Status styles
	OKStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// statusStyle maps a status token to its style.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "ok":
		return OKStyle
	case "warn":
		return WarnStyle
	case "fail":
		return FailStyle
	case "skipped":
		return SkippedStyle
	default:
		return MutedStyle
	}
}
