package readline

import "github.com/reeflective/lineedit/internal/keymap"

// viEditingMode switches the main keymap to vi-move (spec §4.5
// vi-editing-mode).
func (rl *Shell) viEditingMode() {
	rl.Keymap.SetMain(keymap.ViCmd)
}

// emacsEditingMode switches the main keymap back to emacs.
func (rl *Shell) emacsEditingMode() {
	rl.Keymap.SetMain(keymap.Emacs)
}

// viMovementMode enters vi-move, also moving the cursor one left
// (spec §4.5 vi-movement-mode).
func (rl *Shell) viMovementMode() {
	rl.Keymap.SetMain(keymap.ViCmd)
	rl.cursor.Dec()
}

// viInsertionMode enters vi-insert in place.
func (rl *Shell) viInsertionMode() {
	rl.Keymap.SetMain(keymap.ViIns)
}

// viAppendMode enters vi-insert, cursor one right (spec §4.5
// vi-append-mode).
func (rl *Shell) viAppendMode() {
	rl.cursor.Inc()
	rl.Keymap.SetMain(keymap.ViIns)
}

// viAppendEol enters vi-insert at the end of the buffer.
func (rl *Shell) viAppendEol() {
	rl.cursor.Set(rl.line.Len())
	rl.Keymap.SetMain(keymap.ViIns)
}

// viInsertBeg moves the cursor to 0 then enters vi-insert (spec §4.5
// vi-insert-beg).
func (rl *Shell) viInsertBeg() {
	rl.cursor.Set(0)
	rl.Keymap.SetMain(keymap.ViIns)
}

// viEofMaybe accepts the line, or signals EOF on an empty buffer
// (spec §4.5 vi-eof-maybe).
func (rl *Shell) viEofMaybe() {
	if rl.line.Len() == 0 {
		rl.acceptErr = errEOF
		rl.accepted = true

		return
	}

	rl.acceptLine()
}

// viMoveAcceptLine accepts the line and returns to insert mode (spec
// §4.5 vi-move-accept-line).
func (rl *Shell) viMoveAcceptLine() {
	rl.Keymap.SetMain(keymap.ViIns)
	rl.acceptLine()
}

// bracketPairs lists the bracket runes and their matching type codes
// (spec §4.5 vi-match: "brackets are [] {} () with type codes ±1, ±2,
// ±3").
var bracketPairs = []struct {
	open, close rune
	code        int
}{
	{'(', ')', 1},
	{'[', ']', 2},
	{'{', '}', 3},
}

// viMatch jumps to the matching bracket under the cursor, scanning by
// the sign direction and tracking nesting by matching type codes
// (spec §4.5 vi-match).
func (rl *Shell) viMatch() {
	pos := rl.cursor.Pos()
	r := rl.line.CharAt(pos)

	code, forward := bracketCode(r)
	if code == 0 {
		return
	}

	depth := 0
	step := 1

	if !forward {
		step = -1
	}

	for i := pos; i >= 0 && i < rl.line.Len(); i += step {
		c := rl.line.CharAt(i)

		otherCode, otherForward := bracketCode(c)
		if otherCode == abs(code) && otherForward == forward {
			depth++
		} else if otherCode == abs(code) && otherForward != forward {
			depth--

			if depth == 0 {
				rl.cursor.Set(i)
				return
			}
		}
	}
}

// bracketCode returns the unsigned type code of r and whether it is
// an opening bracket (forward scan) or a closing one (backward scan).
func bracketCode(r rune) (code int, forward bool) {
	for _, pair := range bracketPairs {
		switch r {
		case pair.open:
			return pair.code, true
		case pair.close:
			return pair.code, false
		}
	}

	return 0, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// viArgDigit accumulates a base-10 digit into the iteration count
// (spec §4.5 vi-arg-digit).
func (rl *Shell) viArgDigit(digit int) {
	rl.Iterations.Add(digit)
}

// viBeginningOfLineOrArgDigit treats '0' as a digit only when a
// repeat count is already being accumulated, else as
// beginning-of-line (spec §4.5).
func (rl *Shell) viBeginningOfLineOrArgDigit() {
	if rl.Iterations.IsSet() {
		rl.Iterations.Add(0)
		return
	}

	rl.beginningOfLine()
}

// viRubout deletes the previous count runes (vi-rubout).
func (rl *Shell) viRubout() {
	for i := 0; i < rl.Iterations.Get(); i++ {
		rl.backwardDeleteChar()
	}
}

// viDelete deletes the next count runes (vi-delete).
func (rl *Shell) viDelete() {
	for i := 0; i < rl.Iterations.Get(); i++ {
		rl.deleteChar()
	}
}
