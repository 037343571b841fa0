package inputrc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchDocumentedValues(t *testing.T) {
	c := Defaults()

	assert.Equal(t, 150, c.EscapeTimeout())
	assert.False(t, c.BellEnabled(), "nobell defaults to true")
	assert.Equal(t, 100, c.AutoprintThreshold())
	assert.True(t, c.ExpandEvents())
	assert.Equal(t, "#", c.CommentBegin())
}

func TestReadFileAppliesSetVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputrc")
	content := "# comment\nset escape-timeout 50\nset comment-begin ;;\n\"a\": self-insert\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c := Defaults()
	require.NoError(t, c.ReadFile(path))

	assert.Equal(t, 50, c.EscapeTimeout())
	assert.Equal(t, ";;", c.CommentBegin())
}

func TestReadFileMissingFileErrors(t *testing.T) {
	c := Defaults()
	err := c.ReadFile(filepath.Join(t.TempDir(), "nonexistent"))
	assert.Error(t, err)
}

func TestGetBoolAcceptsStringForms(t *testing.T) {
	c := &Config{Vars: map[string]interface{}{"x": "on"}}
	assert.True(t, c.GetBool("x"))

	c.Vars["x"] = "off"
	assert.False(t, c.GetBool("x"))
}
