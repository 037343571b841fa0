package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumbStrategyMoveCursorOnlyBacksspacesLeftward(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &dumbStrategy{out: buf}

	s.MoveCursor(5, 2)
	assert.Equal(t, "\b\b\b", buf.String())

	buf.Reset()
	s.MoveCursor(2, 5)
	assert.Empty(t, buf.String(), "no direct move-right on a dumb terminal")
}

func TestDumbStrategyRedrawEchoesThenBacksUpToCursor(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &dumbStrategy{out: buf}

	s.Redraw([]rune("hi"))
	assert.Equal(t, "hi\b\b", buf.String())
}

func TestDumbStrategyRedrawCountsTabsAsFourColumns(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &dumbStrategy{out: buf}

	s.Redraw([]rune("\ta"))
	assert.Equal(t, "\ta\b\b\b\b\b", buf.String())
}

func TestDumbStrategyEraseAheadBlanksThenBacksUp(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &dumbStrategy{out: buf}

	s.EraseAhead([]rune("abcdef"), 3)
	assert.Equal(t, "   \b\b\b", buf.String())
}

func TestDumbStrategyEraseAheadClampsToTailLength(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &dumbStrategy{out: buf}

	s.EraseAhead([]rune("ab"), 10)
	assert.Equal(t, "  \b\b", buf.String())
}

func TestDumbStrategyClearScreenIsNoop(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &dumbStrategy{out: buf}

	s.ClearScreen()
	assert.Empty(t, buf.String())
}
