// Package search implements SearchState (spec §3/§4.5): the
// reverse-i-search sub-loop entered by reverse-search-history. The Vi
// `/`?` sub-loop (spec §4.7) is similar in spirit but has its own
// buffer-clone/post-loop shape and lives alongside the Vi commands in
// the root package instead, matching the teacher's own split between
// a generic completion/isearch engine and vim.go's bespoke search.
package search

import "github.com/reeflective/lineedit/internal/history"

// State is the reverse-i-search minibuffer: an accumulated search
// term, the index of the current match (or -1), and the term used by
// the previous invocation (carried across invocations so that an
// empty term on a fresh reverse-search-history reuses it — spec §4.5).
type State struct {
	term         []rune
	index        int
	previousTerm string
	view         *history.View
	active       bool
}

// NewState returns an inactive search state bound to view.
func NewState(view *history.View) *State {
	return &State{view: view, index: -1}
}

// Active reports whether SEARCH mode is currently entered.
func (s *State) Active() bool {
	return s.active
}

// Enter starts SEARCH mode (spec §4.5 reverse-search-history).
func (s *State) Enter() {
	s.active = true
	s.term = s.term[:0]
	s.index = -1
}

// Exit leaves SEARCH mode, keeping term as previousTerm for next time.
func (s *State) Exit() {
	s.active = false

	if len(s.term) > 0 {
		s.previousTerm = string(s.term)
	}
}

// Term returns the current search term.
func (s *State) Term() string {
	return string(s.term)
}

// Append adds a rune to the term and re-searches backward from the
// end (spec §4.5: "self-insert appends to term and re-searches
// backward from the end").
func (s *State) Append(r rune) (match string, found bool) {
	s.term = append(s.term, r)
	return s.searchFrom(s.view.Size())
}

// Backspace shortens the term by one rune and re-searches (spec §4.5).
func (s *State) Backspace() (match string, found bool) {
	if len(s.term) > 0 {
		s.term = s.term[:len(s.term)-1]
	}

	return s.searchFrom(s.view.Size())
}

// Again advances to the next older match, reusing previousTerm if the
// current term is empty (spec §4.5: "reverse-search-history advances
// to the next older match; empty term re-uses previousTerm").
func (s *State) Again() (match string, found bool) {
	if len(s.term) == 0 && s.previousTerm != "" {
		s.term = []rune(s.previousTerm)
	}

	from := s.index
	if from < 0 {
		from = s.view.Size()
	}

	return s.searchFrom(from)
}

func (s *State) searchFrom(from int) (string, bool) {
	idx := s.view.SearchBackward(string(s.term), from)
	if idx < 0 {
		return "", false
	}

	s.index = idx

	line, err := s.view.Get(idx)
	if err != nil {
		return "", false
	}

	return line, true
}
