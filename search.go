package readline

import (
	"github.com/reeflective/lineedit/internal/core"
	"github.com/reeflective/lineedit/internal/history"
	"github.com/reeflective/lineedit/internal/keymap"
)

// reverseSearchHistory enters SEARCH state on first invocation, or
// advances to the next older match on a repeat invocation while
// already searching (spec §4.5 Reverse-i-search).
func (rl *Shell) reverseSearchHistory() {
	if !rl.Search.Active() {
		rl.savedLine = rl.line.Clone()
		rl.savedCursor = rl.cursor.Pos()

		rl.Search.Enter()
		rl.Keymap.SetLocal(keymap.Isearch)

		return
	}

	if match, found := rl.Search.Again(); found {
		rl.line.Set([]rune(match)...)
		rl.cursor.Set(rl.line.Len())
	} else {
		rl.Hint.Set(noMatchHint(rl.Search.Term()))
	}
}

// isearchSelfInsert appends to the search term and re-searches
// backward from the end (spec §4.5).
func (rl *Shell) isearchSelfInsert(r rune) {
	if match, found := rl.Search.Append(r); found {
		rl.line.Set([]rune(match)...)
		rl.cursor.Set(rl.line.Len())
	} else {
		rl.Hint.Set(noMatchHint(rl.Search.Term()))
	}
}

// isearchBackwardDeleteChar shortens the search term and re-searches
// (spec §4.5).
func (rl *Shell) isearchBackwardDeleteChar() {
	if match, found := rl.Search.Backspace(); found {
		rl.line.Set([]rune(match)...)
		rl.cursor.Set(rl.line.Len())
	}
}

// isearchAbort restores the original prompt and buffer (spec §4.5).
func (rl *Shell) isearchAbort() {
	rl.exitIsearch(true)
}

// exitIsearch leaves SEARCH state. If cancel is true the buffer saved
// on entry is restored; otherwise the matched buffer is kept and the
// triggering key is left to be re-dispatched in NORMAL state by the
// main read loop (spec §4.5: "Any other bound key exits SEARCH...
// and re-dispatches the key in NORMAL state").
func (rl *Shell) exitIsearch(cancel bool) {
	rl.Search.Exit()
	rl.Keymap.SetLocal(keymap.NoLocal)

	if cancel {
		rl.line.Set(rl.savedLine...)
		rl.cursor.Set(rl.savedCursor)
	}

	rl.Hint.Clear()
}

func noMatchHint(term string) string {
	return "(failed reverse-i-search)`" + term + "'"
}

// viSearch starts the Vi `/` or `?` search sub-loop (spec §4.7):
// clone the buffer, show a one-character prompt, read keys into a
// minibuffer until Enter/ESC/empty-backspace, then search history and
// either install the match or restore the saved buffer.
func (rl *Shell) viSearch(forward bool) {
	rl.savedLine = rl.line.Clone()
	rl.savedCursor = rl.cursor.Pos()

	prompt := "?"
	if forward {
		prompt = "/"
	}

	var minibuf core.Line

	minibuf.Insert(0, []rune(prompt)...)
	rl.line.Set(minibuf...)
	rl.cursor.Set(rl.line.Len())

	term := rl.readViSearchTerm()
	if term == nil {
		rl.line.Set(rl.savedLine...)
		rl.cursor.Set(rl.savedCursor)

		return
	}

	view := rl.History.Current()

	var idx int
	if forward {
		idx = view.SearchForward(string(term), 0)
	} else {
		idx = view.SearchBackward(string(term), view.Size())
	}

	if idx < 0 {
		rl.line.Set(rl.savedLine...)
		rl.cursor.Set(rl.savedCursor)

		return
	}

	entry, _ := view.Get(idx)
	rl.line.Set([]rune(entry)...)
	rl.cursor.Set(0)

	rl.viSearchPostLoop(string(term), forward, idx)
}

// readViSearchTerm reads keys directly (bypassing the main keymap
// dispatch) until the minibuffer is complete, aborted, or emptied by
// backspace (spec §4.7). Returns nil on abort.
func (rl *Shell) readViSearchTerm() []rune {
	for {
		key, err := rl.Keys.Pull()
		if err != nil {
			return nil
		}

		switch key {
		case '\r', '\n':
			return rl.line[1:]
		case 27:
			return nil
		case 127, 8:
			if rl.line.Len() <= 1 {
				return nil
			}

			rl.line.Cut(rl.line.Len()-1, rl.line.Len())
		default:
			rl.line.Insert(rl.line.Len(), key)
		}

		rl.cursor.Set(rl.line.Len())
		rl.Display.Refresh(&rl.line, rl.cursor)
	}
}

// viSearchPostLoop interprets n/N to move to the next/previous
// containing entry; any other key ends the search and is returned to
// the main loop via pushback (spec §4.7).
func (rl *Shell) viSearchPostLoop(term string, forward bool, matchIdx int) {
	for {
		key, err := rl.Keys.Pull()
		if err != nil {
			return
		}

		view := rl.History.Current()

		switch key {
		case 'n':
			matchIdx = nextMatch(view, term, matchIdx, forward)
		case 'N':
			matchIdx = nextMatch(view, term, matchIdx, !forward)
		default:
			rl.Keys.Feed(false, key)
			return
		}

		if matchIdx >= 0 {
			entry, _ := view.Get(matchIdx)
			rl.line.Set([]rune(entry)...)
			rl.cursor.Set(0)
			rl.Display.Refresh(&rl.line, rl.cursor)
		}
	}
}

func nextMatch(view *history.View, term string, from int, forward bool) int {
	if forward {
		if idx := view.SearchForward(term, from+1); idx >= 0 {
			return idx
		}
	} else if idx := view.SearchBackward(term, from); idx >= 0 {
		return idx
	}

	return from
}
