package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAnsiStrategy(buf *bytes.Buffer, width int, weirdWrap bool) *ansiStrategy {
	r := &Renderer{weirdWrap: weirdWrap}
	return &ansiStrategy{out: buf, width: func() int { return width }, renderer: r}
}

func TestAnsiStrategyMoveCursorSameRowOnlySetsColumn(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 10, false)

	a.MoveCursor(2, 7)
	assert.Equal(t, "\x1b[8G", buf.String())
}

func TestAnsiStrategyMoveCursorSamePositionIsNoop(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 10, false)

	a.MoveCursor(4, 4)
	assert.Empty(t, buf.String())
}

func TestAnsiStrategyMoveCursorAcrossRowsMovesDown(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 10, false)

	a.MoveCursor(5, 12)
	assert.Equal(t, "\x1b[1B\x1b[3G", buf.String())
}

func TestAnsiStrategyMoveCursorAcrossRowsMovesUp(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 10, false)

	a.MoveCursor(15, 3)
	assert.Equal(t, "\x1b[1A\x1b[4G", buf.String())
}

func TestAnsiStrategyEraseAheadSingleRow(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 10, false)

	a.EraseAhead([]rune("abc"), 3)
	assert.Equal(t, "\x1b[K", buf.String())
}

func TestAnsiStrategyEraseAheadMultipleWrappedRows(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 5, false)

	a.EraseAhead([]rune("123456789012"), 12)
	assert.Equal(t, "\x1b[K\x1b[1B\x1b[2K\x1b[1B\x1b[2K\x1b[2A", buf.String())
}

func TestAnsiStrategyRedrawEmitsWeirdWrapPadOnExactWidthMultiple(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 4, true)

	a.Redraw([]rune("abcd"))
	assert.Equal(t, "abcd \r", buf.String())
}

func TestAnsiStrategyRedrawSkipsWeirdWrapPadWhenNotAWidthMultiple(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 4, true)

	a.Redraw([]rune("abc"))
	assert.Equal(t, "abc", buf.String())
}

func TestAnsiStrategyClearScreenEmitsClearAndHome(t *testing.T) {
	buf := &bytes.Buffer{}
	a := newAnsiStrategy(buf, 80, false)

	a.ClearScreen()
	assert.Equal(t, "\x1b[2J\x1b[1;1H", buf.String())
}
