package keymap

import (
	"strings"

	"github.com/reeflective/lineedit/internal/inputrc"
)

// Binding is one parsed `"<seq>": <action>` line from an init file.
type Binding struct {
	Seq  []rune
	Bind inputrc.Bind
}

// ParseBindings extracts key-binding lines from init-file content,
// skipping variable assignments ("set ..."), conditionals ("$if"/
// "$endif") and comments — the subset of the inputrc grammar spec §6
// names as the external interface. A bound value in double quotes is
// a macro replacement string; otherwise it is an Operation name.
func ParseBindings(content string) []Binding {
	var out []Binding

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "set ") || strings.HasPrefix(line, "$") ||
			!strings.HasPrefix(line, "\"") {
			continue
		}

		closing := strings.IndexByte(line[1:], '"')
		if closing < 0 {
			continue
		}

		closing++

		seq := []rune(inputrc.Unescape(line[1:closing]))

		rest := strings.TrimSpace(line[closing+1:])
		rest = strings.TrimPrefix(rest, ":")
		rest = strings.TrimSpace(rest)

		if len(rest) >= 2 && strings.HasPrefix(rest, "\"") && strings.HasSuffix(rest, "\"") {
			out = append(out, Binding{
				Seq:  seq,
				Bind: inputrc.Bind{Action: inputrc.Unescape(rest[1 : len(rest)-1]), Macro: true},
			})

			continue
		}

		if rest == "" {
			continue
		}

		out = append(out, Binding{Seq: seq, Bind: inputrc.Bind{Action: rest}})
	}

	return out
}

// ApplyBindings installs every parsed Binding into the named keymap.
func (e *Engine) ApplyBindings(mode Mode, bindings []Binding) {
	m := e.Get(mode)

	for _, b := range bindings {
		m.Bind(b.Seq, b.Bind)
	}
}
