package core

// Cursor is an integer index into a Line, always kept in [0, line.Len()].
type Cursor struct {
	line *Line
	pos  int
	mark int
}

// NewCursor returns a cursor bound to line, positioned at 0.
func NewCursor(line *Line) *Cursor {
	return &Cursor{line: line, mark: -1}
}

// Set moves the cursor to an absolute position, clamped to the buffer.
func (c *Cursor) Set(pos int) {
	c.pos = clamp(pos, 0, c.line.Len())
}

// Pos returns the current cursor index.
func (c *Cursor) Pos() int {
	return c.pos
}

// Move shifts the cursor by a relative offset, clamped to the buffer.
func (c *Cursor) Move(offset int) {
	c.Set(c.pos + offset)
}

// Inc moves the cursor one position right.
func (c *Cursor) Inc() {
	c.Move(1)
}

// Dec moves the cursor one position left.
func (c *Cursor) Dec() {
	c.Move(-1)
}

// Char returns the rune under the cursor, or the NUL sentinel at end
// of buffer (spec §4.1 current()).
func (c *Cursor) Char() rune {
	return c.line.CharAt(c.pos)
}

// CharNext returns the rune following the cursor (spec §4.1 nextChar()).
func (c *Cursor) CharNext() rune {
	return c.line.CharAt(c.pos + 1)
}

// AtBeginningOfLine reports whether the cursor sits at column 0 of the
// logical line it is on (used by history-aware motions).
func (c *Cursor) AtBeginningOfLine() bool {
	return c.pos == 0 || c.line.CharAt(c.pos-1) == '\n'
}

// AtEndOfLine reports whether the cursor sits just before a newline or
// at the end of the buffer.
func (c *Cursor) AtEndOfLine() bool {
	return c.pos == c.line.Len() || c.line.CharAt(c.pos) == '\n'
}

// CheckAppend clamps the cursor to [0, len] — the Emacs-mode rule
// where the cursor may legally rest one past the last rune.
func (c *Cursor) CheckAppend() {
	c.Set(c.pos)
}

// CheckCommand clamps the cursor to [0, len-1] (or 0 on an empty
// buffer) — the Vi-move-mode rule where the cursor always rests on a
// rune, never past it.
func (c *Cursor) CheckCommand() {
	last := c.line.Len() - 1
	if last < 0 {
		last = 0
	}

	if c.pos > last {
		c.pos = last
	}
}

// SetMark records the current position as a mark. No built-in command
// sets a mark.
func (c *Cursor) SetMark() {
	c.mark = c.pos
}

// ResetMark clears any recorded mark.
func (c *Cursor) ResetMark() {
	c.mark = -1
}

// Mark returns the recorded mark, or -1 if none is set.
func (c *Cursor) Mark() int {
	return c.mark
}

// Line returns which logical (newline-delimited) line the cursor sits
// on, counting from 0.
func (c *Cursor) Line() int {
	line := 0

	for i := 0; i < c.pos && i < c.line.Len(); i++ {
		if (*c.line)[i] == '\n' {
			line++
		}
	}

	return line
}

// LineMove moves the cursor to the start of the buffer for a negative
// count and to its end for a positive one; zero leaves it in place.
// Multi-line editing is a Non-goal (spec §1), so there is no per-line
// movement. Nothing in this module calls it.
func (c *Cursor) LineMove(lines int) {
	if lines < 0 {
		c.Set(0)
	} else if lines > 0 {
		c.Set(c.line.Len())
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
