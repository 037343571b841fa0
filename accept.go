package readline

import (
	"errors"
	"strings"

	"github.com/reeflective/lineedit/internal/history"
	"github.com/reeflective/lineedit/internal/keymap"
)

// errEOF is returned by Readline when vi-eof-maybe runs on an empty
// buffer (spec §4.5 vi-eof-maybe). An EOF from the decoder is returned
// as term.ErrEOF instead.
var errEOF = errors.New("readline: end of input")

// acceptLine moves the cursor to the end, emits a newline, runs event
// expansion if enabled, saves the line to history and signals the
// read loop to return it (spec §4.5 Accept).
func (rl *Shell) acceptLine() {
	if rl.Opts.ExpandEvents() {
		expanded, changed, err := history.Expand(rl.History.Current(), string(rl.line), string(rl.line))
		if err != nil {
			rl.Hint.Set(err.Error())
			return
		}

		if changed {
			rl.line.Set([]rune(expanded)...)
		}
	}

	rl.Display.AcceptLine(&rl.line)

	_ = rl.History.Current().Accept(string(rl.line))

	rl.accepted = true
	rl.acceptErr = nil
}

// insertComment prepends the comment prefix at position 0 and accepts
// (spec §4.5 Insert-comment). In Vi mode it also switches to insert.
func (rl *Shell) insertComment() {
	prefix := rl.Opts.CommentBegin()

	if !strings.HasPrefix(string(rl.line), prefix) {
		rl.line.Insert(0, []rune(prefix)...)
	}

	if !rl.Keymap.IsEmacs() {
		rl.Keymap.SetMain(keymap.ViIns)
	}

	rl.acceptLine()
}
