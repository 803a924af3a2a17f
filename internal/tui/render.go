package tui

import "fmt"

// Renderer formats summary text, styled or plain depending on an explicit
// capability flag decided at construction. Both modes produce identical
// semantic content.
type Renderer struct {
	styled bool
}

// NewRenderer creates a renderer. Pass the result of SupportsStyling.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// Styled reports whether this renderer emits escape codes.
func (r *Renderer) Styled() bool {
	return r.styled
}

// Title formats the summary title.
func (r *Renderer) Title(s string) string {
	if !r.styled {
		return s
	}
	return TitleStyle.Render(s)
}

// Section formats a section header.
func (r *Renderer) Section(s string) string {
	if !r.styled {
		return s
	}
	return SectionStyle.Render(s)
}

// Muted formats secondary information.
func (r *Renderer) Muted(s string) string {
	if !r.styled {
		return s
	}
	return MutedStyle.Render(s)
}

// StatusTag formats a bracketed status token, e.g. "[warn]".
func (r *Renderer) StatusTag(status string) string {
	tag := fmt.Sprintf("[%s]", status)
	if !r.styled {
		return tag
	}
	return statusStyle(status).Render(tag)
}
