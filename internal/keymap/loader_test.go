package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/lineedit/internal/inputrc"
)

func TestParseBindingsSkipsNonBindingLines(t *testing.T) {
	content := "# a comment\nset bell-style none\n$if mode=emacs\n\n"

	bindings := ParseBindings(content)
	assert.Empty(t, bindings)
}

func TestParseBindingsOperationName(t *testing.T) {
	content := `"\C-x\C-r": re-read-init-file`

	bindings := ParseBindings(content)
	require.Len(t, bindings, 1)

	assert.Equal(t, []rune{24, 18}, bindings[0].Seq)
	assert.Equal(t, "re-read-init-file", bindings[0].Bind.Action)
	assert.False(t, bindings[0].Bind.Macro)
}

func TestParseBindingsMacroString(t *testing.T) {
	content := `"\C-k": "killed\n"`

	bindings := ParseBindings(content)
	require.Len(t, bindings, 1)

	assert.True(t, bindings[0].Bind.Macro)
	assert.Equal(t, "killed\n", bindings[0].Bind.Action)
}

func TestParseBindingsMultipleLines(t *testing.T) {
	content := "\"a\": self-insert\n\"b\": self-insert\n"

	bindings := ParseBindings(content)
	assert.Len(t, bindings, 2)
}

func TestApplyBindingsInstallsIntoNamedKeymap(t *testing.T) {
	e := NewEngine(nil)
	e.ApplyBindings(Emacs, []Binding{
		{Seq: []rune{'a'}, Bind: inputrc.Bind{Action: "self-insert"}},
	})

	bind, ok := e.Get(Emacs).Lookup([]rune{'a'})
	require.True(t, ok)
	assert.Equal(t, "self-insert", bind.Action)
}
