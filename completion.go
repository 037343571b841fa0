package readline

import (
	"github.com/rsteube/carapace"

	"github.com/reeflective/lineedit/internal/completion"
	"github.com/reeflective/lineedit/internal/term"
)

// RegisterCarapaceCompleter wires a carapace.Action generator in as a
// completer (spec §4.6 domain-stack addition), so an embedding
// application that already describes its command tree to carapace can
// reuse those same actions for line completion instead of writing a
// second, line-editor-specific completer.
func (rl *Shell) RegisterCarapaceCompleter(action func(line []rune, cursor int) carapace.Action) {
	rl.Completer.Register(completion.NewCarapaceCompleter(action).Complete)
}

// complete asks the CompletionDriver to generate and, if unambiguous,
// insert a completion; otherwise it opens the candidate menu (spec
// §4.5/§4.8).
func (rl *Shell) complete() {
	rl.Completer.Complete(&rl.line, rl.cursor)
}

// completeMenuNext cycles forward through an already-open completion
// menu (spec §4.6 menu-complete).
func (rl *Shell) completeMenuNext() {
	if !rl.Completer.Active() {
		rl.Completer.Complete(&rl.line, rl.cursor)
		return
	}

	rl.Completer.Next(&rl.line, rl.cursor)
}

// completeMenuPrevious cycles backward through the open menu.
func (rl *Shell) completeMenuPrevious() {
	rl.Completer.Previous(&rl.line, rl.cursor)
}

// possibleCompletions renders the candidate list without inserting
// anything, but only the first rendered line is shown, as the hint.
// When the list has more rendered lines than the autoprint threshold,
// the hint reads "(show all N matches?)" instead, where N counts
// rendered lines rather than candidates; no answer is read and the
// full list is not printed.
func (rl *Shell) possibleCompletions() {
	lines := rl.Completer.List(&rl.line, rl.cursor, term.GetWidth(int(rl.in.Fd())))
	if len(lines) == 0 {
		return
	}

	if len(lines) > rl.Opts.AutoprintThreshold() {
		rl.Hint.Set("(show all " + itoa(len(lines)) + " matches?)")
		return
	}

	rl.Hint.Set(lines[0])
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}

	return string(digits)
}
