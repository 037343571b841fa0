package readline

import "github.com/reeflective/lineedit/internal/strutil"

// beginningOfLine moves the cursor to column 0 (spec §4.5 Motion).
func (rl *Shell) beginningOfLine() {
	rl.cursor.Set(0)
}

// endOfLine moves the cursor past the last rune of the buffer.
func (rl *Shell) endOfLine() {
	rl.cursor.Set(rl.line.Len())
}

// backwardChar moves the cursor one rune left.
func (rl *Shell) backwardChar() {
	rl.cursor.Dec()
}

// forwardChar moves the cursor one rune right.
func (rl *Shell) forwardChar() {
	rl.cursor.Inc()
}

// backwardWord skips non-delimiters then delimiters moving left (spec
// §4.5: "Delimiter = any char that is not letter-or-digit").
func (rl *Shell) backwardWord() {
	pos := rl.cursor.Pos()

	for pos > 0 && !strutil.IsWordChar(rl.line.CharAt(pos-1)) {
		pos--
	}

	for pos > 0 && strutil.IsWordChar(rl.line.CharAt(pos-1)) {
		pos--
	}

	rl.cursor.Set(pos)
}

// forwardWord skips delimiters then non-delimiters moving right.
func (rl *Shell) forwardWord() {
	pos := rl.cursor.Pos()
	length := rl.line.Len()

	for pos < length && !strutil.IsWordChar(rl.line.CharAt(pos)) {
		pos++
	}

	for pos < length && strutil.IsWordChar(rl.line.CharAt(pos)) {
		pos++
	}

	rl.cursor.Set(pos)
}

// viPrevWord implements vi-prev-word: whitespace-vs-non-whitespace
// word boundaries instead of Emacs's letter-or-digit rule, repeated
// the active iteration count (spec §4.5).
func (rl *Shell) viPrevWord() {
	for i := 0; i < rl.Iterations.Get(); i++ {
		pos := rl.cursor.Pos()

		for pos > 0 && strutil.IsBlank(rl.line.CharAt(pos-1)) {
			pos--
		}

		if pos > 0 {
			start := rl.line.CharAt(pos - 1)
			isWord := strutil.IsWordChar(start)

			for pos > 0 && !strutil.IsBlank(rl.line.CharAt(pos-1)) && strutil.IsWordChar(rl.line.CharAt(pos-1)) == isWord {
				pos--
			}
		}

		rl.cursor.Set(pos)
	}
}

// viNextWord implements vi-next-word.
func (rl *Shell) viNextWord() {
	for i := 0; i < rl.Iterations.Get(); i++ {
		pos := rl.cursor.Pos()
		length := rl.line.Len()

		if pos < length {
			isWord := strutil.IsWordChar(rl.line.CharAt(pos))

			for pos < length && !strutil.IsBlank(rl.line.CharAt(pos)) && strutil.IsWordChar(rl.line.CharAt(pos)) == isWord {
				pos++
			}
		}

		for pos < length && strutil.IsBlank(rl.line.CharAt(pos)) {
			pos++
		}

		rl.cursor.Set(pos)
	}
}

// viEndWord implements vi-end-word: move to the end of the current or
// next word.
func (rl *Shell) viEndWord() {
	for i := 0; i < rl.Iterations.Get(); i++ {
		pos := rl.cursor.Pos()
		length := rl.line.Len()

		pos++

		for pos < length && strutil.IsBlank(rl.line.CharAt(pos)) {
			pos++
		}

		if pos < length {
			isWord := strutil.IsWordChar(rl.line.CharAt(pos))

			for pos+1 < length && !strutil.IsBlank(rl.line.CharAt(pos+1)) && strutil.IsWordChar(rl.line.CharAt(pos+1)) == isWord {
				pos++
			}
		}

		if pos >= length {
			pos = length - 1
		}

		if pos < 0 {
			pos = 0
		}

		rl.cursor.Set(pos)
	}
}
