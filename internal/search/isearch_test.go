package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/lineedit/internal/history"
)

func seededView(lines ...string) *history.View {
	m := history.NewMemory()
	for _, l := range lines {
		_, _ = m.Add(l)
	}

	return history.NewView(m)
}

func TestSearchEnterResetsTermAndIndex(t *testing.T) {
	s := NewState(seededView("apple", "banana"))

	s.Enter()
	assert.True(t, s.Active())
	assert.Equal(t, "", s.Term())
	assert.Equal(t, -1, s.index)
}

func TestSearchAppendFindsMostRecentMatch(t *testing.T) {
	s := NewState(seededView("apple", "banana", "apricot"))
	s.Enter()

	match, found := s.Append('a')
	require.True(t, found)
	assert.Equal(t, "apricot", match, "search scans backward from the most recent entry")
}

func TestSearchAppendNoMatchReportsNotFound(t *testing.T) {
	s := NewState(seededView("apple", "banana"))
	s.Enter()

	_, found := s.Append('z')
	assert.False(t, found)
}

func TestSearchBackspaceShrinksTermAndRetries(t *testing.T) {
	s := NewState(seededView("apple", "banana"))
	s.Enter()

	_, _ = s.Append('x')
	_, found := s.Append('z') // "xz" matches nothing

	require.False(t, found)

	match, found := s.Backspace() // term is now "x", still matches nothing
	assert.False(t, found)
	assert.Equal(t, "", match)
}

func TestSearchAgainAdvancesToOlderMatch(t *testing.T) {
	s := NewState(seededView("apple", "banana", "apricot"))
	s.Enter()

	_, found := s.Append('a')
	require.True(t, found)

	first, found := s.Append('p') // term "ap" still matches "apricot" first
	require.True(t, found)
	require.Equal(t, "apricot", first)

	second, found := s.Again()
	require.True(t, found)
	assert.Equal(t, "apple", second, "repeat invocation advances past the already-found entry")
}

func TestSearchExitKeepsTermAsPrevious(t *testing.T) {
	s := NewState(seededView("apple"))
	s.Enter()
	_, _ = s.Append('a')
	s.Exit()

	assert.False(t, s.Active())

	s.Enter()
	match, found := s.Again()
	require.True(t, found, "an empty term on re-entry reuses the previous search term")
	assert.Equal(t, "apple", match)
}
