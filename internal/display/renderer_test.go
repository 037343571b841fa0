package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/lineedit/internal/core"
)

type recordingStrategy struct {
	moved       []int
	redrawn     [][]rune
	erased      []rune
	erasedCount int
	cleared     bool
}

func (s *recordingStrategy) MoveCursor(from, to int) { s.moved = append(s.moved, from, to) }
func (s *recordingStrategy) EraseAhead(tail []rune, n int) {
	s.erased = tail
	s.erasedCount = n
}
func (s *recordingStrategy) Redraw(tail []rune) { s.redrawn = append(s.redrawn, tail) }
func (s *recordingStrategy) ClearScreen()        { s.cleared = true }

func newTestRenderer(width int) (*Renderer, *recordingStrategy, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	r := New(buf, func() int { return width }, true)
	rec := &recordingStrategy{}
	r.strategy = rec

	return r, rec, buf
}

func TestPromptWidthUsesOnlyLastLineAndIgnoresANSI(t *testing.T) {
	r, _, _ := newTestRenderer(80)
	r.SetPrompt("banner\n\x1b[1m$ \x1b[0m")

	assert.Equal(t, 2, r.PromptWidth())
}

func TestColumnWrapsAtTerminalWidth(t *testing.T) {
	r, _, _ := newTestRenderer(10)
	r.SetPrompt("$ ")

	assert.Equal(t, 2, r.Column(0))
	assert.Equal(t, 9, r.Column(7))
	assert.Equal(t, 0, r.Column(8), "wraps past width 10")
}

func TestColumnNoWrapWhenWidthUnknown(t *testing.T) {
	r, _, _ := newTestRenderer(0)
	r.SetPrompt("$ ")

	assert.Equal(t, 42, r.Column(40))
}

func TestInitPrintsPromptAndRecordsLastColumn(t *testing.T) {
	r, _, buf := newTestRenderer(80)
	r.SetPrompt("$ ")

	r.Init()

	assert.Equal(t, "$ ", buf.String())
	assert.Equal(t, 2, r.lastCol)
}

func TestRefreshRedrawsTailAfterCursorAndMovesCursor(t *testing.T) {
	r, rec, _ := newTestRenderer(80)
	r.SetPrompt("$ ")

	line := core.Line([]rune("hello"))
	cursor := core.NewCursor(&line)
	cursor.Set(2)

	r.Refresh(&line, cursor)

	require.Len(t, rec.redrawn, 1)
	assert.Equal(t, []rune("llo"), rec.redrawn[0])
	assert.Equal(t, 2+5, rec.moved[0], "moved from end-of-line column")
	assert.Equal(t, 2+2, rec.moved[1], "moved to cursor column")
}

func TestRefreshWithFullMaskHidesEveryCharacter(t *testing.T) {
	r, rec, _ := newTestRenderer(80)
	r.SetPrompt("$ ")
	r.SetMask('*')

	line := core.Line([]rune("secret"))
	cursor := core.NewCursor(&line)
	cursor.Set(0)

	r.Refresh(&line, cursor)

	require.Len(t, rec.redrawn, 1)
	assert.Equal(t, []rune("******"), rec.redrawn[0])
}

func TestRefreshWithNulMaskHidesInputEntirely(t *testing.T) {
	r, rec, _ := newTestRenderer(80)
	r.SetPrompt("$ ")
	r.SetMask('\x00')

	line := core.Line([]rune("secret"))
	cursor := core.NewCursor(&line)
	cursor.Set(3)

	r.Refresh(&line, cursor)

	require.Len(t, rec.redrawn, 1)
	assert.Empty(t, rec.redrawn[0])
}

func TestEraseAheadPassesRemainingTailAndCount(t *testing.T) {
	r, rec, _ := newTestRenderer(80)
	r.SetPrompt("$ ")

	line := core.Line([]rune("hello world"))
	cursor := core.NewCursor(&line)
	cursor.Set(5)

	r.EraseAhead(&line, cursor, 3)

	assert.Equal(t, []rune(" world"), rec.erased)
	assert.Equal(t, 3, rec.erasedCount)
}

func TestClearScreenClearsThenReprintsPromptAndLine(t *testing.T) {
	r, rec, buf := newTestRenderer(80)
	r.SetPrompt("$ ")

	line := core.Line([]rune("hi"))
	cursor := core.NewCursor(&line)
	cursor.Set(2)

	r.ClearScreen(&line, cursor)

	assert.True(t, rec.cleared)
	assert.Equal(t, "$ ", buf.String(), "prompt reprinted once by Init")
	require.NotEmpty(t, rec.redrawn)
}

func TestAcceptLineMovesToEndAndEmitsNewline(t *testing.T) {
	r, rec, buf := newTestRenderer(80)
	r.SetPrompt("$ ")
	r.lastCol = 5

	line := core.Line([]rune("hi"))
	r.AcceptLine(&line)

	assert.Equal(t, []int{5, 4}, rec.moved)
	assert.Equal(t, "\r\n", buf.String())
}
