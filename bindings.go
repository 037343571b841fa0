package readline

import (
	"github.com/reeflective/lineedit/internal/inputrc"
	"github.com/reeflective/lineedit/internal/keymap"
)

// widgets returns the Operation-name → command table shared by every
// keymap (spec §4.3: "Bound value is one of: Operation tag; macro
// string; callback").
func (rl *Shell) widgets() map[string]func() {
	return map[string]func() {
		"beginning-of-line":      rl.beginningOfLine,
		"end-of-line":            rl.endOfLine,
		"backward-char":          rl.backwardChar,
		"forward-char":           rl.forwardChar,
		"backward-word":          rl.backwardWord,
		"forward-word":           rl.forwardWord,
		"vi-prev-word":           rl.viPrevWord,
		"vi-next-word":           rl.viNextWord,
		"vi-end-word":            rl.viEndWord,

		"backward-delete-char": rl.backwardDeleteChar,
		"delete-char":          rl.deleteChar,
		"kill-line":            rl.killLine,
		"kill-whole-line":      rl.killWholeLine,
		"unix-word-rubout":     rl.unixWordRubout,
		"backward-kill-word":   rl.backwardKillWord,
		"kill-word":            rl.killWord,
		"capitalize-word":      rl.capitalizeWord,
		"upcase-word":          rl.upcaseWord,
		"downcase-word":        rl.downcaseWord,
		"transpose-chars":      rl.transposeChars,
		"overwrite-mode":       rl.overwriteMode,
		"tab-insert":           rl.tabInsert,
		"clear-screen":         rl.clearScreen,

		"previous-history":     rl.previousHistory,
		"next-history":         rl.nextHistory,
		"beginning-of-history": rl.beginningOfHistory,
		"end-of-history":       rl.endOfHistory,
		"vi-previous-history":  rl.viPreviousHistory,
		"vi-next-history":      rl.viNextHistory,
		"history-cycle-source": rl.historyCycleSource,

		"reverse-search-history":        rl.reverseSearchHistory,
		"isearch-backward-delete-char":  rl.isearchBackwardDeleteChar,
		"abort":                         rl.isearchAbort,

		"complete":              rl.complete,
		"menu-complete":         rl.completeMenuNext,
		"menu-complete-backward": rl.completeMenuPrevious,
		"possible-completions":  rl.possibleCompletions,

		"start-kbd-macro":    rl.startKbdMacro,
		"end-kbd-macro":      rl.endKbdMacro,
		"call-last-kbd-macro": rl.callLastKbdMacro,

		"vi-editing-mode":                  rl.viEditingMode,
		"emacs-editing-mode":               rl.emacsEditingMode,
		"vi-movement-mode":                 rl.viMovementMode,
		"vi-insertion-mode":                rl.viInsertionMode,
		"vi-append-mode":                   rl.viAppendMode,
		"vi-append-eol":                    rl.viAppendEol,
		"vi-insert-beg":                    rl.viInsertBeg,
		"vi-eof-maybe":                     rl.viEofMaybe,
		"vi-match":                         rl.viMatch,
		"vi-search-fwd":                    func() { rl.viSearch(true) },
		"vi-search-bwd":                    func() { rl.viSearch(false) },
		"vi-beginning-of-line-or-arg-digit": rl.viBeginningOfLineOrArgDigit,
		"vi-rubout":                        rl.viRubout,
		"vi-delete":                        rl.viDelete,
		"vi-change-case":                   rl.viChangeCase,
		"vi-move-accept-line":              rl.viMoveAcceptLine,

		"accept-line":     rl.acceptLine,
		"insert-comment":  rl.insertComment,

		"magic-space":              rl.magicSpace,
		"yank-last-arg":            rl.yankLastArg,
		"yank-nth-arg":             rl.yankNthArg,
		"history-search-backward":  rl.historySearchBackward,
		"history-search-forward":   rl.historySearchForward,
		"operate-and-get-next":     rl.operateAndGetNext,
		"re-read-init-file":        rl.reReadInitFile,
	}
}

// bindDefaults populates the three persistent keymaps with the
// bindings spec §6 names by example and §4.5 documents by name. Every
// printable ASCII rune is bound directly via a Callback (rather than
// through the named-Operation table) to self-insert in the keymaps
// where typing inserts text, since the trie has no "default binding"
// concept beyond the explicit sequences given to it (spec §4.3).
func (rl *Shell) bindDefaults() {
	emacs := rl.Keymap.Get(keymap.Emacs)
	viIns := rl.Keymap.Get(keymap.ViIns)
	viCmd := rl.Keymap.Get(keymap.ViCmd)
	isearch := rl.Keymap.Get(keymap.Isearch)

	for r := rune(' '); r <= '~'; r++ {
		insert := rune(r)
		bind := inputrc.Bind{Action: "self-insert", Callback: func() { rl.selfInsert(insert) }}

		emacs.Bind([]rune{insert}, bind)
		viIns.Bind([]rune{insert}, bind)

		isearchRune := insert
		isearch.Bind([]rune{insert}, inputrc.Bind{
			Action:   "isearch-self-insert",
			Callback: func() { rl.isearchSelfInsert(isearchRune) },
		})
	}

	isearch.Bind([]rune{inputrc.Backspace}, op("isearch-backward-delete-char"))
	isearch.Bind([]rune{inputrc.Delete}, op("isearch-backward-delete-char"))
	isearch.Bind([]rune{inputrc.Ctrl_G}, op("abort"))
	isearch.Bind([]rune{18}, op("reverse-search-history")) // Ctrl-R

	// Emacs control bindings.
	emacs.Bind([]rune{inputrc.Ctrl_C}, op("accept-line"))
	emacs.Bind([]rune{inputrc.CtrlM}, op("accept-line"))
	emacs.Bind([]rune{inputrc.LineFeed}, op("accept-line"))
	emacs.Bind([]rune{1}, op("beginning-of-line"))  // Ctrl-A
	emacs.Bind([]rune{5}, op("end-of-line"))        // Ctrl-E
	emacs.Bind([]rune{2}, op("backward-char"))      // Ctrl-B
	emacs.Bind([]rune{6}, op("forward-char"))       // Ctrl-F
	emacs.Bind([]rune{inputrc.Backspace}, op("backward-delete-char"))
	emacs.Bind([]rune{inputrc.Delete}, op("backward-delete-char"))
	emacs.Bind([]rune{4}, op("delete-char")) // Ctrl-D
	emacs.Bind([]rune{11}, op("kill-line"))  // Ctrl-K
	emacs.Bind([]rune{21}, op("unix-word-rubout")) // Ctrl-U
	emacs.Bind([]rune{23}, op("unix-word-rubout")) // Ctrl-W
	emacs.Bind([]rune{20}, op("transpose-chars"))  // Ctrl-T
	emacs.Bind([]rune{9}, op("complete"))           // Tab
	emacs.Bind([]rune{16}, op("previous-history"))  // Ctrl-P
	emacs.Bind([]rune{14}, op("next-history"))      // Ctrl-N
	emacs.Bind([]rune{18}, op("reverse-search-history")) // Ctrl-R
	emacs.Bind([]rune{12}, op("clear-screen"))           // Ctrl-L
	emacs.Bind([]rune{inputrc.Escape, 'b'}, op("backward-word"))
	emacs.Bind([]rune{inputrc.Escape, 'f'}, op("forward-word"))
	emacs.Bind([]rune{inputrc.Escape, 'd'}, op("kill-word"))
	emacs.Bind([]rune{inputrc.Escape, inputrc.Backspace}, op("backward-kill-word"))
	emacs.Bind([]rune{inputrc.Escape, 'c'}, op("capitalize-word"))
	emacs.Bind([]rune{inputrc.Escape, 'u'}, op("upcase-word"))
	emacs.Bind([]rune{inputrc.Escape, 'l'}, op("downcase-word"))
	emacs.Bind([]rune{inputrc.Escape, '?'}, op("possible-completions"))
	emacs.Bind([]rune{inputrc.Escape, '('}, op("start-kbd-macro"))
	emacs.Bind([]rune{inputrc.Escape, ')'}, op("end-kbd-macro"))
	emacs.Bind([]rune{inputrc.Escape, 'e'}, op("call-last-kbd-macro"))
	emacs.Bind([]rune{inputrc.Escape}, inputrc.Bind{Action: "do-nothing"})
	emacs.Bind([]rune{inputrc.Escape, '#'}, op("insert-comment"))
	emacs.Bind([]rune{' '}, op("magic-space"))
	emacs.Bind([]rune{15}, op("operate-and-get-next")) // Ctrl-O
	emacs.Bind([]rune{inputrc.Escape, '.'}, op("yank-last-arg"))
	emacs.Bind([]rune{inputrc.Escape, '_'}, op("yank-last-arg"))
	emacs.Bind([]rune{inputrc.Escape, 'y'}, op("yank-nth-arg"))
	emacs.Bind([]rune{inputrc.Escape, 'p'}, op("history-search-backward"))
	emacs.Bind([]rune{inputrc.Escape, 'n'}, op("history-search-forward"))
	emacs.Bind([]rune{24, 18}, op("re-read-init-file")) // Ctrl-X Ctrl-R

	// Vi-insert shares only accept-line (Ctrl-C, Enter, LF), Backspace/
	// Delete and Tab with Emacs, besides the self-insert keys above, and
	// switches to vi-move on Escape.
	for _, seq := range [][]rune{
		{inputrc.Ctrl_C}, {inputrc.CtrlM}, {inputrc.LineFeed},
		{inputrc.Backspace}, {inputrc.Delete}, {9},
	} {
		if b, ok := emacs.Lookup(seq); ok {
			viIns.Bind(seq, b)
		}
	}

	viIns.Bind([]rune{inputrc.Escape}, op("vi-movement-mode"))
	viIns.Bind([]rune{4}, op("vi-eof-maybe"))

	// Vi-move motions and operators.
	viCmd.Bind([]rune{'h'}, op("backward-char"))
	viCmd.Bind([]rune{'l'}, op("forward-char"))
	viCmd.Bind([]rune{' '}, op("forward-char"))
	viCmd.Bind([]rune{'0'}, op("vi-beginning-of-line-or-arg-digit"))
	viCmd.Bind([]rune{'$'}, op("end-of-line"))
	viCmd.Bind([]rune{'b'}, op("vi-prev-word"))
	viCmd.Bind([]rune{'w'}, op("vi-next-word"))
	viCmd.Bind([]rune{'e'}, op("vi-end-word"))
	viCmd.Bind([]rune{'i'}, op("vi-insertion-mode"))
	viCmd.Bind([]rune{'a'}, op("vi-append-mode"))
	viCmd.Bind([]rune{'A'}, op("vi-append-eol"))
	viCmd.Bind([]rune{'I'}, op("vi-insert-beg"))
	viCmd.Bind([]rune{'x'}, op("vi-delete"))
	viCmd.Bind([]rune{'X'}, op("vi-rubout"))
	viCmd.Bind([]rune{'~'}, op("vi-change-case"))
	viCmd.Bind([]rune{'%'}, op("vi-match"))
	viCmd.Bind([]rune{'/'}, op("vi-search-fwd"))
	viCmd.Bind([]rune{'?'}, op("vi-search-bwd"))
	viCmd.Bind([]rune{'k'}, op("vi-previous-history"))
	viCmd.Bind([]rune{'j'}, op("vi-next-history"))
	viCmd.Bind([]rune{inputrc.CtrlM}, op("vi-move-accept-line"))
	viCmd.Bind([]rune{4}, op("vi-eof-maybe"))
	viCmd.Bind([]rune{':'}, op("emacs-editing-mode"))

	for d := rune('1'); d <= '9'; d++ {
		digit := int(d - '0')
		viCmd.Bind([]rune{d}, inputrc.Bind{Action: "vi-arg-digit", Callback: func() { rl.viArgDigit(digit) }})
	}

	rl.Keymap.SetLocal(keymap.NoLocal)
}

func op(action string) inputrc.Bind {
	return inputrc.Bind{Action: action}
}
