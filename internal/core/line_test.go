package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineInsertAndCut(t *testing.T) {
	var l Line
	l.Set([]rune("helloworld")...)

	l.Insert(5, ' ')
	assert.Equal(t, "hello world", l.String())

	l.Cut(5, 6)
	assert.Equal(t, "helloworld", l.String())
}

func TestLineDeleteAtAlwaysOne(t *testing.T) {
	var l Line
	l.Set([]rune("abcdef")...)

	l.DeleteAt(0)
	assert.Equal(t, "bcdef", l.String())
	assert.Equal(t, 5, l.Len())
}

func TestLineCharAtOutOfBounds(t *testing.T) {
	var l Line
	l.Set([]rune("ab")...)

	assert.Equal(t, rune(0), l.CharAt(-1))
	assert.Equal(t, rune(0), l.CharAt(2))
}

func TestLineClone(t *testing.T) {
	var l Line
	l.Set([]rune("clone me")...)

	clone := l.Clone()
	clone.Insert(0, 'X')

	assert.Equal(t, "clone me", l.String())
	assert.Equal(t, "Xclone me", clone.String())
}
