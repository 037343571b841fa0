package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintStartsEmpty(t *testing.T) {
	h := NewHint()
	assert.True(t, h.Empty())
	assert.Equal(t, "", h.Text())
}

func TestHintSetAndClear(t *testing.T) {
	h := NewHint()

	h.Set("(recording)")
	assert.False(t, h.Empty())
	assert.Equal(t, "(recording)", h.Text())

	h.Clear()
	assert.True(t, h.Empty())
}
