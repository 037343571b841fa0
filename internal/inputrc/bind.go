// Package inputrc implements the init-file format that populates the
// editor's keymaps and variables (spec §1 "parsing of the startup
// init file... specified only at its interface", expanded here into a
// concrete GNU-readline-compatible parser since the teacher carries
// one under this exact package name).
package inputrc

// Bind is the tagged variant a KeyMap node is bound to (spec Design
// Note 9): an Operation name, a macro replay string, a callback, or
// (represented one level up, in internal/keymap) a child map.
type Bind struct {
	// Action is the Operation name ("backward-char", …) when Macro is
	// false, or the raw macro replacement text when Macro is true.
	Action string
	Macro  bool
	// Callback, when non-nil, is invoked directly instead of looking
	// up Action in the command table.
	Callback func()
}

// IsZero reports whether the bind carries no command/macro/callback.
func (b Bind) IsZero() bool {
	return b.Action == "" && b.Callback == nil
}

// DoLowercaseVersion is the sentinel Operation name (spec §4.3) that
// instructs the Controller to lowercase the last key of the pending
// sequence and retry resolution.
const DoLowercaseVersion = "do-lowercase-version"

// Unescape expands backslash escapes in a macro string bound in the
// init file (\C-x, \e, \n, \t, \r, \\) into literal runes before the
// text is replayed as synthetic keystrokes. Any other escaped
// character stands for itself: octal and hex escapes are not expanded.
func Unescape(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i == len(runes)-1 {
			out = append(out, r)
			continue
		}

		i++

		switch runes[i] {
		case 'C':
			if i+1 < len(runes) && runes[i+1] == '-' && i+2 < len(runes) {
				i += 2
				out = append(out, ctrl(runes[i]))
			}
		case 'e':
			out = append(out, Escape)
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		default:
			out = append(out, runes[i])
		}
	}

	return string(out)
}

func ctrl(r rune) rune {
	upper := r
	if upper >= 'a' && upper <= 'z' {
		upper -= 'a' - 'A'
	}

	return rune(upper & 0x1f)
}

// Key code constants referenced throughout the command set.
const (
	NUL       rune = 0
	Ctrl_C    rune = 3
	Ctrl_D    rune = 4
	Ctrl_G    rune = 7
	Backspace rune = 8
	Tab       rune = 9
	LineFeed  rune = 10
	CtrlM     rune = 13 // Enter/Return
	Escape    rune = 27
	Space     rune = 32
	Delete    rune = 127
)
