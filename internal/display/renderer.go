// Package display implements the Renderer of spec §4.6: it prints the
// line, keeps the terminal's visual cursor synchronized with the
// buffer's cursor, redraws the tail after an edit and erases ahead
// after a shrinking edit, using one of two strategies chosen by
// terminal capability.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/reeflective/lineedit/internal/core"
	"github.com/reeflective/lineedit/internal/strutil"
)

// Strategy is how the Renderer talks to the terminal: ANSI-capable
// terminals get precise cursor addressing, "dumb" ones (no ANSI, or
// output redirected) get the conservative backspace/re-echo strategy.
type Strategy interface {
	// MoveCursor repositions the visual cursor from column `from` to
	// column `to`, both measured from the start of the prompt line.
	MoveCursor(from, to int)
	// EraseAhead erases n characters forward of the cursor and
	// returns the cursor to its starting column.
	EraseAhead(tail []rune, n int)
	// Redraw reprints the buffer from the cursor position onward.
	Redraw(tail []rune)
	// ClearScreen clears the terminal and homes the cursor.
	ClearScreen()
}

// Renderer owns prompt/cursor synchronization for one Shell. It reads
// the buffer but does not own it (Design Note: "Cyclic display/buffer
// dependency" — the Controller passes buffer/cursor into each call).
type Renderer struct {
	out   io.Writer
	width func() int

	strategy Strategy
	ansi     bool

	prompt    string
	mask      rune
	masked    bool
	weirdWrap bool

	lastCol int
}

// New returns a Renderer writing to out, querying terminal width via
// width, using the ANSI strategy when ansiCapable is true and the
// dumb strategy otherwise (spec §4.6).
func New(out io.Writer, width func() int, ansiCapable bool) *Renderer {
	r := &Renderer{out: out, width: width, ansi: ansiCapable}

	if ansiCapable {
		r.strategy = &ansiStrategy{out: out, width: width, renderer: r}
	} else {
		r.strategy = &dumbStrategy{out: out, renderer: r}
	}

	return r
}

// SetPrompt installs the prompt string used for column math. Only the
// portion after the last newline counts toward cursor column (spec
// §3 Prompt).
func (r *Renderer) SetPrompt(prompt string) {
	r.prompt = prompt
}

// SetMask installs the echo mask character and turns masking on for
// every later redraw ('\x00' disables echo entirely while still
// recording input — spec §4.6 Masking).
func (r *Renderer) SetMask(mask rune) {
	r.mask = mask
	r.masked = true
}

// SetWeirdWrap toggles the dummy-space-then-CR workaround for
// terminals that don't commit a line wrap until the next character is
// emitted (spec §4.6, Glossary "Weird wrap").
func (r *Renderer) SetWeirdWrap(weird bool) {
	r.weirdWrap = weird
}

// PromptWidth returns the display width of the prompt's last line,
// with embedded ANSI escapes stripped (spec §4.6 Column math).
func (r *Renderer) PromptWidth() int {
	tail := r.prompt
	if i := strings.LastIndexByte(tail, '\n'); i >= 0 {
		tail = tail[i+1:]
	}

	return strutil.RealLength(tail)
}

// Column returns the absolute terminal column (0-based) a given
// cursor position in the buffer maps to (spec §4.6 Column math:
// promptDisplayWidth + cursor, modulo terminal width).
func (r *Renderer) Column(cursorPos int) int {
	width := r.width()
	col := r.PromptWidth() + cursorPos

	if width > 0 {
		col %= width
	}

	return col
}

func (r *Renderer) visibleLine(line *core.Line) []rune {
	if !r.masked {
		return []rune(*line)
	}

	if r.mask == '\x00' {
		return nil
	}

	masked := make([]rune, line.Len())
	for i := range masked {
		masked[i] = r.mask
	}

	return masked
}

// Init prints the prompt for the first time in a readline call.
func (r *Renderer) Init() {
	fmt.Fprint(r.out, r.prompt)
	r.lastCol = r.PromptWidth()
}

// Refresh reconciles the terminal display with the current buffer and
// cursor after a command has run.
func (r *Renderer) Refresh(line *core.Line, cursor *core.Cursor) {
	visible := r.visibleLine(line)

	target := r.Column(cursor.Pos())

	r.strategy.Redraw(visible[minInt(cursor.Pos(), len(visible)):])
	r.strategy.MoveCursor(r.Column(len(visible)), target)

	r.lastCol = target
}

// EraseAhead erases n characters starting at the cursor (used after a
// deletion shrinks the buffer) and restores the cursor column.
func (r *Renderer) EraseAhead(line *core.Line, cursor *core.Cursor, n int) {
	visible := r.visibleLine(line)
	tail := visible[minInt(cursor.Pos(), len(visible)):]

	r.strategy.EraseAhead(tail, n)
}

// ClearScreen implements the clear-screen command (spec §4.5): ANSI
// `2J` + `1;1H`, then the line is redrawn.
func (r *Renderer) ClearScreen(line *core.Line, cursor *core.Cursor) {
	r.strategy.ClearScreen()
	r.Init()
	r.Refresh(line, cursor)
}

// AcceptLine moves the cursor to the end of the line and emits a
// newline, matching spec §4.5 accept-line's rendering contract.
func (r *Renderer) AcceptLine(line *core.Line) {
	r.strategy.MoveCursor(r.lastCol, r.Column(line.Len()))
	fmt.Fprint(r.out, "\r\n")
}

// RefreshTransient is a deferred best-effort redraw hook, called once
// readline returns, matching the teacher's `Display.RefreshTransient`
// call site; this editor core has no transient-prompt feature in
// scope (spec Non-goals: right-prompt rendering), so it is a no-op
// kept only so the call site reads the same as the teacher's.
func (r *Renderer) RefreshTransient() {}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
