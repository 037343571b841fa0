package readline

import (
	"strings"
	"unicode"

	"github.com/reeflective/lineedit/internal/strutil"
)

// selfInsert inserts r at the cursor, count times, switching it to
// its tab-expansion or caret form only at render time (spec §4.5).
// In overwrite-mode, existing runes are replaced rather than pushed
// right.
func (rl *Shell) selfInsert(r rune) {
	for i := 0; i < rl.Iterations.Get(); i++ {
		pos := rl.cursor.Pos()

		if rl.overwrite && pos < rl.line.Len() {
			rl.line.Cut(pos, pos+1)
		}

		rl.line.Insert(pos, r)
		rl.cursor.Inc()
	}
}

// backwardDeleteChar deletes the rune before the cursor.
func (rl *Shell) backwardDeleteChar() {
	pos := rl.cursor.Pos()
	if pos == 0 {
		return
	}

	rl.line.DeleteAt(pos - 1)
	rl.cursor.Dec()
}

// deleteChar deletes the rune under the cursor (spec: "delete always
// deletes exactly one char regardless of count" — Line.DeleteAt never
// takes a count argument, by construction).
func (rl *Shell) deleteChar() {
	rl.line.DeleteAt(rl.cursor.Pos())
}

// killLine deletes from the cursor to end of buffer.
func (rl *Shell) killLine() {
	rl.line.Cut(rl.cursor.Pos(), rl.line.Len())
}

// killWholeLine deletes the entire buffer, cursor to 0.
func (rl *Shell) killWholeLine() {
	rl.line.Set()
	rl.cursor.Set(0)
}

// unixWordRubout deletes back over one run of whitespace then one
// word (spec §4.5).
func (rl *Shell) unixWordRubout() {
	pos := rl.cursor.Pos()

	for pos > 0 && strutil.IsBlank(rl.line.CharAt(pos-1)) {
		pos--
	}

	for pos > 0 && !strutil.IsBlank(rl.line.CharAt(pos-1)) {
		pos--
	}

	rl.line.Cut(pos, rl.cursor.Pos())
	rl.cursor.Set(pos)
}

// backwardKillWord deletes the word behind the cursor (Emacs
// letter-or-digit delimiter rule).
func (rl *Shell) backwardKillWord() {
	start := rl.cursor.Pos()

	rl.backwardWord()

	rl.line.Cut(rl.cursor.Pos(), start)
}

// killWord deletes the word ahead of the cursor.
func (rl *Shell) killWord() {
	start := rl.cursor.Pos()

	rl.forwardWord()
	end := rl.cursor.Pos()

	rl.line.Cut(start, end)
	rl.cursor.Set(start)
}

// capitalizeWord capitalizes the first letter of the next word,
// lowercasing the rest, advancing past it.
func (rl *Shell) capitalizeWord() {
	rl.mapWord(func(s string) string {
		return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	})
}

// upcaseWord uppercases the next word.
func (rl *Shell) upcaseWord() {
	rl.mapWord(strings.ToUpper)
}

// downcaseWord lowercases the next word.
func (rl *Shell) downcaseWord() {
	rl.mapWord(strings.ToLower)
}

func (rl *Shell) mapWord(transform func(string) string) {
	start := rl.cursor.Pos()

	rl.forwardWord()
	end := rl.cursor.Pos()

	if end <= start {
		return
	}

	word := string([]rune(rl.line)[start:end])
	rl.line.Cut(start, end)
	rl.line.Insert(start, []rune(transform(word))...)
	rl.cursor.Set(end)
}

// transposeChars swaps the two runes straddling the cursor and
// advances one; at the end of the line it swaps the last two runes.
// It does nothing at position 0 or on a line shorter than two runes.
func (rl *Shell) transposeChars() {
	pos := rl.cursor.Pos()
	length := rl.line.Len()

	if pos == 0 || length < 2 {
		return
	}

	if pos >= length {
		pos = length - 1
	}

	a, b := rl.line.CharAt(pos-1), rl.line.CharAt(pos)
	rl.line.Cut(pos-1, pos+1)
	rl.line.Insert(pos-1, b, a)
	rl.cursor.Set(pos + 1)
}

// viChangeCase swaps the case of the rune under the cursor and
// advances, repeated the active iteration count (spec §4.5
// vi-change-case).
func (rl *Shell) viChangeCase() {
	for i := 0; i < rl.Iterations.Get(); i++ {
		pos := rl.cursor.Pos()

		r := rl.line.CharAt(pos)
		if r == 0 {
			break
		}

		swapped := r
		switch {
		case unicode.IsUpper(r):
			swapped = unicode.ToLower(r)
		case unicode.IsLower(r):
			swapped = unicode.ToUpper(r)
		}

		rl.line.Cut(pos, pos+1)
		rl.line.Insert(pos, swapped)
		rl.cursor.Inc()
	}
}

// overwriteMode toggles overtype insertion.
func (rl *Shell) overwriteMode() {
	rl.overwrite = !rl.overwrite
}

// tabInsert inserts a literal tab character.
func (rl *Shell) tabInsert() {
	rl.line.Insert(rl.cursor.Pos(), '\t')
	rl.cursor.Inc()
}

// clearScreen implements ANSI 2J + 1;1H then redraws the line (spec
// §4.5).
func (rl *Shell) clearScreen() {
	rl.Display.ClearScreen(&rl.line, rl.cursor)
}
