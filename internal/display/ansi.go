package display

import (
	"fmt"
	"io"

	"github.com/reeflective/lineedit/internal/term"
)

// ansiStrategy implements spec §4.6's ANSI display strategy: CSI
// cursor-move/column/erase sequences, with weird-wrap workaround.
type ansiStrategy struct {
	out      io.Writer
	width    func() int
	renderer *Renderer
}

func (a *ansiStrategy) MoveCursor(from, to int) {
	if from == to {
		return
	}

	width := a.width()

	fromRow, toRow := 0, 0
	if width > 0 {
		fromRow = from / width
		toRow = to / width
	}

	if toRow != fromRow {
		if toRow < fromRow {
			term.Up(a.out, fromRow-toRow)
		} else {
			term.Down(a.out, toRow-fromRow)
		}
	}

	term.Column(a.out, to%maxInt(width, 1))
}

// EraseAhead computes how many wrapped rows the tail occupies and
// erases each, then returns the cursor to its starting column (spec
// §4.6: "emits per-row CSI B / CSI 2K, then returns with CSI n A").
func (a *ansiStrategy) EraseAhead(tail []rune, n int) {
	width := maxInt(a.width(), 1)

	rows := (len(tail) + width - 1) / width
	if rows == 0 {
		rows = 1
	}

	fmt.Fprint(a.out, term.ClearLineAfter)

	for i := 1; i < rows; i++ {
		term.Down(a.out, 1)
		fmt.Fprint(a.out, term.ClearLine)
	}

	if rows > 1 {
		term.Up(a.out, rows-1)
	}
}

func (a *ansiStrategy) Redraw(tail []rune) {
	fmt.Fprint(a.out, string(tail))

	if a.renderer.weirdWrap {
		width := a.width()
		if width > 0 && len(tail) > 0 && len(tail)%width == 0 {
			fmt.Fprint(a.out, " \r")
		}
	}
}

func (a *ansiStrategy) ClearScreen() {
	fmt.Fprint(a.out, term.ClearScreen)
	fmt.Fprint(a.out, term.CursorHome)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
