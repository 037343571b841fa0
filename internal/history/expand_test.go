package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandBangBang(t *testing.T) {
	v := seeded("echo hi")

	out, changed, err := Expand(v, "!!", "")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "echo hi", out)
}

func TestExpandByAbsoluteIndex(t *testing.T) {
	v := seeded("first", "second", "third")

	out, changed, err := Expand(v, "!2", "")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "second", out)
}

func TestExpandByNegativeOffset(t *testing.T) {
	v := seeded("first", "second", "third")

	out, _, err := Expand(v, "!-1", "")
	require.NoError(t, err)
	assert.Equal(t, "third", out)
}

func TestExpandByPrefixSearch(t *testing.T) {
	v := seeded("git status", "git commit", "ls -la")

	out, _, err := Expand(v, "!git", "")
	require.NoError(t, err)
	assert.Equal(t, "git commit", out, "prefix search scans from most recent")
}

func TestExpandByTermSearch(t *testing.T) {
	v := seeded("git status", "git commit -m test", "ls -la")

	out, _, err := Expand(v, "!?commit?", "")
	require.NoError(t, err)
	assert.Equal(t, "git commit -m test", out)
}

func TestExpandEventNotFound(t *testing.T) {
	v := seeded("one")

	_, _, err := Expand(v, "!nonexistent", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event not found")
}

func TestExpandBangHash(t *testing.T) {
	v := seeded()

	out, changed, err := Expand(v, "echo !#", "echo ")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "echo echo ", out)
}

func TestExpandBangFollowedBySpaceIsLiteral(t *testing.T) {
	v := seeded("one")

	out, changed, err := Expand(v, "echo ! foo", "")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "echo ! foo", out)
}

func TestExpandEscapedBangIsLiteral(t *testing.T) {
	v := seeded("one")

	out, changed, err := Expand(v, `echo \!2`, "")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "echo !2", out)
}

func TestExpandCaretSubstitution(t *testing.T) {
	v := seeded("echo hello")

	out, changed, err := Expand(v, "^hello^world", "")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "echo world", out)
}

func TestExpandCaretSubstitutionFailed(t *testing.T) {
	v := seeded("echo hello")

	_, _, err := Expand(v, "^missing^world", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "substitution failed")
}
