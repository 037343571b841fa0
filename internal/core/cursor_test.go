package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorClampsToBuffer(t *testing.T) {
	var l Line
	l.Set([]rune("abc")...)

	c := NewCursor(&l)
	c.Set(100)
	assert.Equal(t, 3, c.Pos())

	c.Set(-5)
	assert.Equal(t, 0, c.Pos())
}

func TestCursorCheckAppendVsCheckCommand(t *testing.T) {
	var l Line
	l.Set([]rune("abc")...)

	c := NewCursor(&l)
	c.Set(3)

	c.CheckAppend()
	assert.Equal(t, 3, c.Pos(), "emacs mode may rest one past the last rune")

	c.CheckCommand()
	assert.Equal(t, 2, c.Pos(), "vi-move mode always rests on a rune")
}

func TestCursorCheckCommandOnEmptyBuffer(t *testing.T) {
	var l Line
	c := NewCursor(&l)

	c.CheckCommand()
	assert.Equal(t, 0, c.Pos())
}
