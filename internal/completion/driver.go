package completion

import (
	"strings"

	"github.com/reeflective/lineedit/internal/core"
	"github.com/reeflective/lineedit/internal/inputrc"
)

// Driver is the CompletionDriver of spec §3/§4.6: it runs registered
// Completers against the current line, groups and renders the
// resulting candidates, and tracks which one is currently selected
// while the completion menu is active.
type Driver struct {
	completers []Completer
	opts       *inputrc.Config

	active     bool
	groups     []Group
	flat       []Candidate
	selected   int
	prefixLen  int
	filterTerm string
}

// NewDriver returns a Driver with no completers registered.
func NewDriver(opts *inputrc.Config) *Driver {
	return &Driver{opts: opts, selected: -1}
}

// Register adds a Completer, tried in registration order; the first
// one to return any candidates wins (spec §4.6).
func (d *Driver) Register(c Completer) {
	d.completers = append(d.completers, c)
}

// Active reports whether the completion menu is currently shown.
func (d *Driver) Active() bool {
	return d.active
}

// Complete runs the registered completers against line/cursor, in
// order, until one returns candidates. A single candidate is inserted
// directly; with several, their common prefix is inserted when it is
// longer than the typed prefix and the menu opens. The autoprint
// threshold plays no part in this choice (spec §4.6).
func (d *Driver) Complete(line *core.Line, cursor *core.Cursor) bool {
	runes := []rune(line.String())
	pos := cursor.Pos()

	var candidates []Candidate

	prefixLen := 0

	for _, completer := range d.completers {
		candidates, prefixLen = completer(runes, pos)
		if len(candidates) > 0 {
			break
		}
	}

	if len(candidates) == 0 {
		d.active = false
		return false
	}

	d.prefixLen = prefixLen
	d.filterTerm = ""

	if len(candidates) == 1 {
		d.insert(line, cursor, candidates[0])
		d.active = false

		return true
	}

	if common, ok := commonPrefix(candidates); ok && len(common) > prefixLen {
		d.insertText(line, cursor, common)
		d.prefixLen = len(common)
	}

	d.groups = ByTag(candidates)
	d.flat = candidates
	d.selected = -1
	d.active = true

	return true
}

// Next selects the next candidate in the open menu, wrapping around
// (spec §4.6 "menu-complete cycles forward through candidates").
func (d *Driver) Next(line *core.Line, cursor *core.Cursor) {
	if !d.active || len(d.flat) == 0 {
		return
	}

	d.selected = (d.selected + 1) % len(d.flat)
	d.insert(line, cursor, d.flat[d.selected])
}

// Previous selects the previous candidate, wrapping around.
func (d *Driver) Previous(line *core.Line, cursor *core.Cursor) {
	if !d.active || len(d.flat) == 0 {
		return
	}

	d.selected--
	if d.selected < 0 {
		d.selected = len(d.flat) - 1
	}

	d.insert(line, cursor, d.flat[d.selected])
}

// FilterAppend narrows the open menu by one more rune of incremental
// search (spec §4.6 menu isearch).
func (d *Driver) FilterAppend(r rune) {
	d.filterTerm += string(r)
	d.flat = Filter(d.flat, d.filterTerm)
	d.groups = ByTag(d.flat)
	d.selected = -1
}

// Cancel closes the menu without altering the line further.
func (d *Driver) Cancel() {
	d.active = false
	d.groups = nil
	d.flat = nil
	d.selected = -1
}

// List runs the registered completers and returns the rendered
// candidate listing without inserting anything or opening the menu
// (spec §4.5 possible-completions).
func (d *Driver) List(line *core.Line, cursor *core.Cursor, width int) []string {
	runes := []rune(line.String())
	pos := cursor.Pos()

	var candidates []Candidate

	for _, completer := range d.completers {
		candidates, _ = completer(runes, pos)
		if len(candidates) > 0 {
			break
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	var lines []string

	for _, g := range ByTag(candidates) {
		if g.Tag != "" {
			lines = append(lines, g.Tag+":")
		}

		lines = append(lines, g.Render(width)...)
	}

	return lines
}

// Render returns the menu's display lines, grouped and laid out to
// width (spec §4.6).
func (d *Driver) Render(width int) []string {
	var lines []string

	for _, g := range d.groups {
		if g.Tag != "" {
			lines = append(lines, g.Tag+":")
		}

		lines = append(lines, g.Render(width)...)
	}

	return lines
}

func (d *Driver) insert(line *core.Line, cursor *core.Cursor, c Candidate) {
	d.insertText(line, cursor, c.Value)
	d.prefixLen = len([]rune(c.Value))
}

func (d *Driver) insertText(line *core.Line, cursor *core.Cursor, text string) {
	pos := cursor.Pos()
	start := pos - d.prefixLen

	if start < 0 {
		start = 0
	}

	remainder := []rune(line.String())[pos:]
	newLine := append(append([]rune(line.String())[:start:start], []rune(text)...), remainder...)

	line.Set(newLine...)
	cursor.Set(start + len([]rune(text)))
}

func commonPrefix(candidates []Candidate) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	prefix := candidates[0].Value

	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c.Value, prefix) {
			if prefix == "" {
				return "", false
			}

			prefix = prefix[:len(prefix)-1]
		}
	}

	return prefix, prefix != ""
}
