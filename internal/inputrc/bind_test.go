package inputrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescapeControlAndMeta(t *testing.T) {
	assert.Equal(t, string(rune(24)), Unescape(`\C-x`))
	assert.Equal(t, string(Escape), Unescape(`\e`))
	assert.Equal(t, "\n", Unescape(`\n`))
	assert.Equal(t, "\t", Unescape(`\t`))
	assert.Equal(t, `\`, Unescape(`\\`))
}

func TestUnescapeLeavesPlainTextAlone(t *testing.T) {
	assert.Equal(t, "hello", Unescape("hello"))
}

func TestUnescapeTrailingBackslashIsLiteral(t *testing.T) {
	assert.Equal(t, `a\`, Unescape(`a\`))
}

func TestBindIsZero(t *testing.T) {
	assert.True(t, Bind{}.IsZero())
	assert.False(t, Bind{Action: "forward-char"}.IsZero())
	assert.False(t, Bind{Callback: func() {}}.IsZero())
}
