// Package ui implements the small rendering helpers that sit above
// the core Renderer: the prompt string and the transient hint line
// (spec §3 "Renderer" collaborators, §4.6 completion hints).
package ui

import (
	"strings"

	"github.com/reeflective/lineedit/internal/color"
)

// Prompt renders the primary and secondary (continuation) prompt
// strings, expanding the small set of escapes the teacher's shells
// rely on: %{seq%} for non-printing escape sequences (so the
// renderer's column math can skip them), and a literal newline
// marking the start of a multi-line prompt's command portion.
type Prompt struct {
	primary   func() string
	secondary func() string
}

// NewPrompt returns a Prompt using primary for PS1 and secondary (if
// non-nil) for continuation lines.
func NewPrompt(primary func() string) *Prompt {
	return &Prompt{primary: primary}
}

// SetSecondary installs a continuation-prompt generator.
func (p *Prompt) SetSecondary(f func() string) {
	p.secondary = f
}

// Primary returns the rendered primary prompt.
func (p *Prompt) Primary() string {
	if p.primary == nil {
		return ""
	}

	return Expand(p.primary())
}

// Secondary returns the rendered continuation prompt, or "> " when
// none was configured.
func (p *Prompt) Secondary() string {
	if p.secondary == nil {
		return "> "
	}

	return Expand(p.secondary())
}

// Expand strips %{...%} non-printing markers, leaving the raw ANSI
// sequence in place (the renderer computes visible width with
// strutil.RealLength, which already ignores ANSI, so the markers
// themselves carry no information beyond readability in source).
func Expand(s string) string {
	var out strings.Builder

	for {
		start := strings.Index(s, "%{")
		if start < 0 {
			out.WriteString(s)
			break
		}

		end := strings.Index(s[start:], "%}")
		if end < 0 {
			out.WriteString(s)
			break
		}

		out.WriteString(s[:start])
		out.WriteString(s[start+2 : start+end])
		s = s[start+end+2:]
	}

	return out.String()
}

// Colorize wraps s in the given SGR code and a reset, a convenience
// used by callers building primary/secondary prompt functions.
func Colorize(code, s string) string {
	return code + s + color.Reset
}
