package readline

// previousHistory replaces the buffer with the previous (older)
// history entry, cursor at end (spec §4.5 History, Emacs mode).
func (rl *Shell) previousHistory() {
	rl.History.Current().Previous()
	rl.setLineFromHistory(-1)
}

// nextHistory replaces the buffer with the next (newer) history
// entry, cursor at end.
func (rl *Shell) nextHistory() {
	rl.History.Current().Next()
	rl.setLineFromHistory(-1)
}

// beginningOfHistory jumps to the oldest history entry.
func (rl *Shell) beginningOfHistory() {
	rl.History.Current().MoveToFirst()
	rl.setLineFromHistory(-1)
}

// endOfHistory jumps to the most recent history entry (not the live,
// one-past-last position).
func (rl *Shell) endOfHistory() {
	rl.History.Current().MoveToLast()
	rl.setLineFromHistory(-1)
}

// viPreviousHistory is previous-history with the Vi-mode cursor
// placement: position 0 instead of end (spec §4.5).
func (rl *Shell) viPreviousHistory() {
	rl.History.Current().Previous()
	rl.setLineFromHistory(0)
}

// viNextHistory is next-history with the Vi-mode cursor placement.
func (rl *Shell) viNextHistory() {
	rl.History.Current().Next()
	rl.setLineFromHistory(0)
}

// setLineFromHistory installs the current history entry as the buffer
// with the cursor at cursorPos; a negative cursorPos puts the cursor at
// the end of the new line.
func (rl *Shell) setLineFromHistory(cursorPos int) {
	entry := rl.History.Current().Current()
	rl.line.Set([]rune(entry)...)

	if cursorPos < 0 {
		cursorPos = rl.line.Len()
	}

	rl.cursor.Set(cursorPos)
}

// historyCycleSource switches to the next registered history source
// (SPEC_FULL.md domain-stack addition, supplementing the single-source
// history contract of spec §3 with the teacher's multi-history
// support).
func (rl *Shell) historyCycleSource() {
	name := rl.History.Cycle()
	rl.Hint.Set("(history: " + name + ")")
}
