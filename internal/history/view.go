package history

import "strings"

// View is the HistoryView of spec §3: a cursor over an external
// history Source. index == Size() is the "live" position (the buffer
// currently being edited, not yet any history entry).
type View struct {
	provider Source
	index    int
	masked   bool
	disabled bool
}

// NewView returns a view over provider, created empty with index =
// size (spec §3).
func NewView(provider Source) *View {
	return &View{provider: provider, index: provider.Len()}
}

// Size returns the provider's entry count.
func (v *View) Size() int {
	return v.provider.Len()
}

// Index returns the current navigation index.
func (v *View) Index() int {
	return v.index
}

// Get returns the entry at i.
func (v *View) Get(i int) (string, error) {
	return v.provider.Get(i)
}

// Current returns the entry at the current index, or "" when at the
// live position.
func (v *View) Current() string {
	if v.index >= v.Size() {
		return ""
	}

	line, err := v.provider.Get(v.index)
	if err != nil {
		return ""
	}

	return line
}

// MoveTo sets the index directly, clamped to [0, size].
func (v *View) MoveTo(i int) {
	switch {
	case i < 0:
		v.index = 0
	case i > v.Size():
		v.index = v.Size()
	default:
		v.index = i
	}
}

// MoveToFirst moves to the oldest entry.
func (v *View) MoveToFirst() {
	v.MoveTo(0)
}

// MoveToLast moves to the most recent entry (one before the live
// position).
func (v *View) MoveToLast() {
	last := v.Size() - 1
	if last < 0 {
		last = 0
	}

	v.MoveTo(last)
}

// Previous moves one entry toward the oldest (spec §4.5
// previous-history).
func (v *View) Previous() {
	v.MoveTo(v.index - 1)
}

// Next moves one entry toward the live position (spec §4.5
// next-history).
func (v *View) Next() {
	v.MoveTo(v.index + 1)
}

// Entries returns every stored entry from index `from` onward.
func (v *View) Entries(from int) []string {
	var out []string

	for i := from; i < v.Size(); i++ {
		line, err := v.provider.Get(i)
		if err != nil {
			break
		}

		out = append(out, line)
	}

	return out
}

// SetMasked controls whether Accept stores the finished line (spec
// §3: "unless masked or history disabled").
func (v *View) SetMasked(masked bool) {
	v.masked = masked
}

// SetDisabled controls whether Accept stores the finished line at all.
func (v *View) SetDisabled(disabled bool) {
	v.disabled = disabled
}

// Accept appends the finished line to the provider (unless masked or
// disabled) and resets the index to the live position (spec §3).
func (v *View) Accept(line string) error {
	defer func() { v.index = v.Size() }()

	if v.masked || v.disabled || line == "" {
		return nil
	}

	_, err := v.provider.Add(line)

	return err
}

// SearchBackward scans from just before index from down to 0
// (strict — spec §9 Open Question: "Backward search at index 0 uses
// idx > 0; the entry at index 0 may be unreachable. Preserve the
// behavior; do not fix it") for the first entry containing term,
// returning its index or -1.
func (v *View) SearchBackward(term string, from int) int {
	for idx := from; idx > 0; idx-- {
		line, err := v.provider.Get(idx - 1)
		if err != nil {
			continue
		}

		if contains(line, term) {
			return idx - 1
		}
	}

	return -1
}

// SearchForward scans forward from index `from` (inclusive) to the
// end for the first entry containing term.
func (v *View) SearchForward(term string, from int) int {
	for idx := from; idx < v.Size(); idx++ {
		line, err := v.provider.Get(idx)
		if err != nil {
			continue
		}

		if contains(line, term) {
			return idx
		}
	}

	return -1
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
