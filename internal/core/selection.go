package core

// Selection tracks a marked range of the line together with a kind
// tag. No built-in command marks a selection; the Shell only resets it
// at the start of each Readline call.
type Selection struct {
	line   *Line
	cursor *Cursor
	active bool
	bpos   int
	epos   int
	kind   string
}

// NewSelection returns a selection bound to line/cursor, inactive.
func NewSelection(line *Line, cursor *Cursor) *Selection {
	return &Selection{line: line, cursor: cursor}
}

// Mark activates the selection over [begin, end), tagged with kind
// (e.g. "visual", "word").
func (s *Selection) Mark(begin, end int, kind string) {
	s.active = true
	s.bpos, s.epos = begin, end
	s.kind = kind
}

// Reset clears any active selection.
func (s *Selection) Reset() {
	s.active = false
	s.bpos, s.epos = 0, 0
	s.kind = ""
}

// Active reports whether a selection is currently marked.
func (s *Selection) Active() bool {
	return s.active
}

// Pop returns the selected text together with its bounds and kind,
// and clears the selection.
func (s *Selection) Pop() (text string, bpos, epos int, kind string) {
	if !s.active {
		return "", s.cursor.Pos(), s.cursor.Pos(), ""
	}

	bpos, epos, kind = s.bpos, s.epos, s.kind
	if epos > s.line.Len() {
		epos = s.line.Len()
	}

	if bpos > epos {
		bpos, epos = epos, bpos
	}

	text = string((*s.line)[bpos:epos])
	s.Reset()

	return text, bpos, epos, kind
}
