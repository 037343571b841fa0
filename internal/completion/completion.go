// Package completion implements the CompletionDriver of spec §3/§4.6:
// candidate generation, grouping, grid/list rendering and cycling.
package completion

import "sort"

// Candidate is a single completion candidate (spec §4.6): the text
// inserted, the text displayed (when different), a description shown
// alongside it, and a tag grouping it with related candidates.
type Candidate struct {
	Value       string
	Display     string
	Description string
	Tag         string
}

// Completer generates candidates for the word ending at cursor within
// line. It returns the candidates along with the prefix length (how
// many runes before cursor belong to the word being completed, so the
// driver knows what to replace on Insert).
type Completer func(line []rune, cursor int) (candidates []Candidate, prefixLen int)

// Values holds a generated candidate set plus the span of the
// original line it replaces.
type Values struct {
	Candidates []Candidate
	Prefix     string
}

// ByTag groups candidates into their declared Tag, preserving the
// order tags were first seen (spec §4.6: "tagged groups rendered
// under their own heading").
func ByTag(candidates []Candidate) []Group {
	order := make([]string, 0, 4)
	byTag := make(map[string][]Candidate)

	for _, c := range candidates {
		if _, ok := byTag[c.Tag]; !ok {
			order = append(order, c.Tag)
		}

		byTag[c.Tag] = append(byTag[c.Tag], c)
	}

	groups := make([]Group, 0, len(order))
	for _, tag := range order {
		groups = append(groups, NewGroup(tag, byTag[tag]))
	}

	return groups
}

// sortByValue sorts candidates alphabetically by Value. NewGroup
// applies it to every group, so a Completer's own order is not kept.
func sortByValue(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Value < candidates[j].Value
	})
}
