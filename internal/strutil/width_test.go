package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealLengthIgnoresEmbeddedEscapes(t *testing.T) {
	assert.Equal(t, 5, RealLength("\x1b[1mhello\x1b[0m"))
	assert.Equal(t, 5, RealLength("hello"))
}

func TestStripANSIRemovesEscapes(t *testing.T) {
	assert.Equal(t, "hello", StripANSI("\x1b[1mhello\x1b[0m"))
}

func TestCaretWidthTabExpandsToNextStop(t *testing.T) {
	assert.Equal(t, 8, CaretWidth('\t', 0))
	assert.Equal(t, 4, CaretWidth('\t', 4))
	assert.Equal(t, 1, CaretWidth('\t', 7))
}

func TestCaretWidthMatchesCaretRenderingLength(t *testing.T) {
	assert.Equal(t, len(Caret(rune(1))), CaretWidth(rune(1), 0), "Ctrl-A")
	assert.Equal(t, len(Caret(rune(0x85))), CaretWidth(rune(0x85), 0), "high-bit character")
}

func TestCaretPrefixesHighBitWithMeta(t *testing.T) {
	assert.Equal(t, "M-"+Caret(rune(1)), Caret(rune(0x81)))
}
