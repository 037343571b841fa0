package readline

import (
	"strings"

	"github.com/reeflective/lineedit/internal/history"
	"github.com/reeflective/lineedit/internal/strutil"
)

// magicSpace inserts a space, then immediately runs history expansion
// on the buffer so far (a genuine GNU Readline/ZLE command: space
// triggers `!`-expansion without waiting for accept-line).
func (rl *Shell) magicSpace() {
	rl.selfInsert(' ')

	if !rl.Opts.ExpandEvents() {
		return
	}

	pos := rl.cursor.Pos()

	expanded, changed, err := history.Expand(rl.History.Current(), string(rl.line), string(rl.line))
	if err != nil || !changed {
		return
	}

	delta := len([]rune(expanded)) - rl.line.Len()
	rl.line.Set([]rune(expanded)...)
	rl.cursor.Set(pos + delta)
}

// yankLastArg inserts the last word of the previous history entry at
// the cursor (GNU Readline yank-last-arg, bound to Alt-.).
func (rl *Shell) yankLastArg() {
	words := lastHistoryWords(rl)
	if len(words) == 0 {
		return
	}

	rl.insertAtCursor(words[len(words)-1])
}

// yankNthArg inserts the nth word (1-based, after the command itself)
// of the previous history entry; with no repeat count, it inserts the
// first argument (GNU Readline yank-nth-arg).
func (rl *Shell) yankNthArg() {
	words := lastHistoryWords(rl)

	n := rl.Iterations.Get()
	if !rl.Iterations.IsSet() {
		n = 1
	}

	if n < 0 || n >= len(words) {
		return
	}

	rl.insertAtCursor(words[n])
}

func lastHistoryWords(rl *Shell) []string {
	view := rl.History.Current()

	idx := view.Index() - 1
	if idx < 0 {
		idx = view.Size() - 1
	}

	if idx < 0 {
		return nil
	}

	entry, err := view.Get(idx)
	if err != nil {
		return nil
	}

	words, err := strutil.Split(entry)
	if err != nil {
		return nil
	}

	return words
}

func (rl *Shell) insertAtCursor(text string) {
	pos := rl.cursor.Pos()
	rl.line.Insert(pos, []rune(text)...)
	rl.cursor.Set(pos + len([]rune(text)))
}

// historySearchBackward scans toward the oldest entry for one whose
// prefix (the buffer content up to the cursor) matches, Emacs-mode
// cursor placement at end (GNU Readline history-search-backward).
func (rl *Shell) historySearchBackward() {
	rl.historyPrefixSearch(-1, rl.line.Len())
}

// historySearchForward is the forward counterpart.
func (rl *Shell) historySearchForward() {
	rl.historyPrefixSearch(1, rl.line.Len())
}

func (rl *Shell) historyPrefixSearch(step int, cursorPos int) {
	prefix := string([]rune(rl.line)[:rl.cursor.Pos()])

	view := rl.History.Current()
	idx := view.Index() + step

	for idx >= 0 && idx < view.Size() {
		entry, err := view.Get(idx)
		if err == nil && strings.HasPrefix(entry, prefix) {
			view.MoveTo(idx)
			rl.setLineFromHistory(cursorPos)

			return
		}

		idx += step
	}
}

// operateAndGetNext accepts the current line, then arranges for the
// next Readline call to start from the history entry immediately
// following the one just accepted from (GNU Readline
// operate-and-get-next, used by shells' history menus).
func (rl *Shell) operateAndGetNext() {
	next := rl.History.Current().Index() + 1
	rl.acceptLine()
	rl.pendingHistoryIndex = next
}
