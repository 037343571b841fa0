package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesDefaultView(t *testing.T) {
	s := NewSources(NewMemory())

	assert.Equal(t, "default", s.Name())
	require.NotNil(t, s.Current())
}

func TestSourcesAddAndCycle(t *testing.T) {
	s := NewSources(NewMemory())
	s.Add("search", NewView(NewMemory()))

	assert.Equal(t, "search", s.Cycle())
	assert.Equal(t, "default", s.Cycle(), "cycle wraps back around")
}

func TestSourcesSelectUnknownFails(t *testing.T) {
	s := NewSources(NewMemory())

	err := s.Select("nope")
	assert.Error(t, err)
}

func TestSourcesDeleteSelectedResetsSelection(t *testing.T) {
	s := NewSources(NewMemory())
	s.Add("search", NewView(NewMemory()))
	require.NoError(t, s.Select("search"))

	s.Delete("search")

	assert.Equal(t, "default", s.Name())
}

func TestSourcesWalkVisitsAllInOrder(t *testing.T) {
	s := NewSources(NewMemory())
	s.Add("search", NewView(NewMemory()))

	var seen []string
	s.Walk(func(name string, view *View) { seen = append(seen, name) })

	assert.Equal(t, []string{"default", "search"}, seen)
}
