package completion

import "strings"

// Filter narrows a candidate set by substring match against term,
// the "incremental search within the completion menu" widget of spec
// §4.6 (bound to the same self-insert keys while the menu is active).
func Filter(candidates []Candidate, term string) []Candidate {
	if term == "" {
		return candidates
	}

	out := make([]Candidate, 0, len(candidates))

	for _, c := range candidates {
		text := c.Display
		if text == "" {
			text = c.Value
		}

		if strings.Contains(text, term) {
			out = append(out, c)
		}
	}

	return out
}
