package history

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpandError is returned by Expand when an event designator fails to
// resolve (spec §6/§7: "aborts the accept with an event not found
// message; the buffer is preserved so the user can edit").
type ExpandError struct {
	Msg string
}

func (e *ExpandError) Error() string { return e.Msg }

// Expand applies the history-expansion syntax of spec §6 to line,
// given the view to resolve event designators against and the
// in-progress line (for "!#"). It returns the expanded line and
// whether anything changed.
func Expand(view *View, line, current string) (string, bool, error) {
	if strings.HasPrefix(line, "^") {
		return expandCaret(view, line)
	}

	var out strings.Builder

	changed := false
	runes := []rune(line)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '\\' && i+1 < len(runes):
			out.WriteRune(runes[i+1])
			i++

		case r == '!' && i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\t'):
			out.WriteRune('!')

		case r == '!' && i+1 < len(runes) && runes[i+1] == '#':
			out.WriteString(current)
			i++
			changed = true

		case r == '!':
			designator, consumed, err := expandBang(view, runes[i:])
			if err != nil {
				return "", false, err
			}

			out.WriteString(designator)
			i += consumed - 1
			changed = true

		default:
			out.WriteRune(r)
		}
	}

	return out.String(), changed, nil
}

// expandBang handles everything starting with '!' other than the
// literal-space/"!#" cases already special-cased by Expand.
func expandBang(view *View, runes []rune) (string, int, error) {
	rest := string(runes[1:])

	switch {
	case strings.HasPrefix(rest, "!"):
		entry, err := lastEntry(view)
		if err != nil {
			return "", 0, err
		}

		return entry, 2, nil

	case strings.HasPrefix(rest, "?"):
		end := strings.Index(rest[1:], "?")
		var term string
		consumed := 0

		if end >= 0 {
			term = rest[1 : 1+end]
			consumed = 1 + 1 + end + 1 // '!' + '?' + term + '?'
		} else {
			term = rest[1:]
			consumed = len(runes)
		}

		idx := view.SearchBackward(term, view.Size())
		if idx < 0 {
			return "", 0, &ExpandError{Msg: fmt.Sprintf("!?%s: event not found", term)}
		}

		entry, _ := view.Get(idx)

		return entry, consumed, nil

	case len(rest) > 0 && (rest[0] == '-' || isDigit(rest[0])):
		numEnd := 0
		if rest[0] == '-' {
			numEnd++
		}

		for numEnd < len(rest) && isDigit(rest[numEnd]) {
			numEnd++
		}

		n, err := strconv.Atoi(rest[:numEnd])
		if err != nil {
			return "", 0, &ExpandError{Msg: "!" + rest[:numEnd] + ": event not found"}
		}

		idx := n - 1
		if n < 0 {
			idx = view.Size() + n
		}

		entry, getErr := view.Get(idx)
		if getErr != nil {
			return "", 0, &ExpandError{Msg: fmt.Sprintf("!%s: event not found", rest[:numEnd])}
		}

		return entry, 1 + numEnd, nil

	default:
		end := 0
		for end < len(rest) && !isWordBreak(rune(rest[end])) {
			end++
		}

		prefix := rest[:end]

		for idx := view.Size() - 1; idx >= 0; idx-- {
			entry, err := view.Get(idx)
			if err == nil && strings.HasPrefix(entry, prefix) {
				return entry, 1 + end, nil
			}
		}

		return "", 0, &ExpandError{Msg: fmt.Sprintf("!%s: event not found", prefix)}
	}
}

func lastEntry(view *View) (string, error) {
	if view.Size() == 0 {
		return "", &ExpandError{Msg: "!!: event not found"}
	}

	return view.Get(view.Size() - 1)
}

// expandCaret implements `^old^new[^]` at column 0: last entry with
// the first occurrence of old replaced by new (spec §6).
func expandCaret(view *View, line string) (string, bool, error) {
	parts := strings.SplitN(line[1:], "^", 3)
	if len(parts) < 2 {
		return line, false, nil
	}

	old, replacement := parts[0], parts[1]

	entry, err := lastEntry(view)
	if err != nil {
		return "", false, err
	}

	if !strings.Contains(entry, old) {
		return "", false, &ExpandError{Msg: fmt.Sprintf("^%s^%s: substitution failed", old, replacement)}
	}

	return strings.Replace(entry, old, replacement, 1), true, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordBreak(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == ';'
}
