package ui

// Hint is a single line of transient feedback shown below the input
// line: error messages, the active search term, the iteration count,
// or a completion engine's status (spec §4.6/§4.7 "the active search
// prefix/iteration count is shown as a hint below the line").
type Hint struct {
	text string
}

// NewHint returns an empty Hint.
func NewHint() *Hint {
	return &Hint{}
}

// Set replaces the hint text.
func (h *Hint) Set(text string) {
	h.text = text
}

// Clear empties the hint.
func (h *Hint) Clear() {
	h.text = ""
}

// Text returns the current hint text.
func (h *Hint) Text() string {
	return h.text
}

// Empty reports whether there is no hint to display.
func (h *Hint) Empty() bool {
	return h.text == ""
}
