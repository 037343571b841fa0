package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/lineedit/internal/core"
	"github.com/reeflective/lineedit/internal/inputrc"
)

func newLineAt(text string, pos int) (*core.Line, *core.Cursor) {
	var line core.Line
	line.Set([]rune(text)...)

	cursor := core.NewCursor(&line)
	cursor.Set(pos)

	return &line, cursor
}

func staticCompleter(values ...string) Completer {
	return func(line []rune, cursor int) ([]Candidate, int) {
		candidates := make([]Candidate, 0, len(values))
		for _, v := range values {
			candidates = append(candidates, Candidate{Value: v})
		}

		return candidates, 0
	}
}

func TestDriverCompleteSingleCandidateInsertsDirectly(t *testing.T) {
	d := NewDriver(inputrc.Defaults())
	d.Register(staticCompleter("status"))

	line, cursor := newLineAt("git ", 4)

	inserted := d.Complete(line, cursor)

	require.True(t, inserted)
	assert.False(t, d.Active(), "a single candidate is inserted without opening the menu")
	assert.Equal(t, "git status", line.String())
}

func TestDriverCompleteMultipleOpensMenu(t *testing.T) {
	d := NewDriver(inputrc.Defaults())
	d.Register(staticCompleter("status", "stash"))

	line, cursor := newLineAt("git ", 4)

	inserted := d.Complete(line, cursor)

	require.True(t, inserted)
	assert.True(t, d.Active())
}

func TestDriverCompleteNoCandidatesLeavesLineAlone(t *testing.T) {
	d := NewDriver(inputrc.Defaults())
	d.Register(staticCompleter())

	line, cursor := newLineAt("git ", 4)

	inserted := d.Complete(line, cursor)

	assert.False(t, inserted)
	assert.False(t, d.Active())
	assert.Equal(t, "git ", line.String())
}

func TestDriverCompleteTriesCompletersInOrder(t *testing.T) {
	d := NewDriver(inputrc.Defaults())
	d.Register(staticCompleter())
	d.Register(staticCompleter("fallback"))

	line, cursor := newLineAt("", 0)

	inserted := d.Complete(line, cursor)

	require.True(t, inserted)
	assert.Equal(t, "fallback", line.String())
}

func TestDriverNextAndPreviousWrapAround(t *testing.T) {
	d := NewDriver(inputrc.Defaults())
	d.Register(staticCompleter("one", "two"))

	line, cursor := newLineAt("", 0)
	require.True(t, d.Complete(line, cursor))

	d.Next(line, cursor)
	first := line.String()

	d.Next(line, cursor)
	second := line.String()

	d.Next(line, cursor)
	assert.Equal(t, first, line.String(), "selection wraps back to the first candidate")
	assert.NotEqual(t, first, second)

	d.Previous(line, cursor)
	assert.Equal(t, second, line.String(), "selection wraps back to the last candidate")
}

func TestDriverCancelClearsMenu(t *testing.T) {
	d := NewDriver(inputrc.Defaults())
	d.Register(staticCompleter("one", "two"))

	line, cursor := newLineAt("", 0)
	require.True(t, d.Complete(line, cursor))
	require.True(t, d.Active())

	d.Cancel()
	assert.False(t, d.Active())
}

func TestDriverFilterAppendNarrowsCandidates(t *testing.T) {
	d := NewDriver(inputrc.Defaults())
	d.Register(staticCompleter("status", "stash", "commit"))

	line, cursor := newLineAt("", 0)
	require.True(t, d.Complete(line, cursor))

	d.FilterAppend('s')
	d.FilterAppend('t')

	assert.Len(t, d.flat, 2, "only 'status' and 'stash' start with 'st'")
}

func TestDriverListDoesNotMutateLineOrOpenMenu(t *testing.T) {
	d := NewDriver(inputrc.Defaults())
	d.Register(staticCompleter("status", "stash"))

	line, cursor := newLineAt("git ", 4)

	out := d.List(line, cursor, 80)

	assert.NotEmpty(t, out)
	assert.False(t, d.Active())
	assert.Equal(t, "git ", line.String())
}
