package completion

import "github.com/rsteube/carapace"

// CarapaceCompleter adapts a carapace.Action, the structured,
// composable completion engine used by modern Cobra-based CLIs, into
// a Completer (spec §4.6 domain-stack addition: "a Completer
// implementation may delegate candidate generation to a third-party
// completion engine"). It lets an embedding application reuse the
// same carapace actions it already registered for its command tree.
type CarapaceCompleter struct {
	Action func(line []rune, cursor int) carapace.Action
}

// NewCarapaceCompleter wraps a function producing a carapace.Action
// for the current line/cursor into a Completer.
func NewCarapaceCompleter(action func(line []rune, cursor int) carapace.Action) *CarapaceCompleter {
	return &CarapaceCompleter{Action: action}
}

// Complete satisfies Completer by invoking the wrapped carapace.Action
// and converting its values into Candidates.
func (c *CarapaceCompleter) Complete(line []rune, cursor int) ([]Candidate, int) {
	word, prefixLen := currentWord(line, cursor)

	action := c.Action(line, cursor)

	invoked := action.Invoke(carapace.Context{Args: []string{}, CallbackValue: word})

	candidates := make([]Candidate, 0, len(invoked.Values))

	for _, v := range invoked.Values {
		candidates = append(candidates, Candidate{
			Value:       v.Value,
			Display:     v.Display,
			Description: v.Description,
			Tag:         v.Tag,
		})
	}

	return candidates, prefixLen
}

func currentWord(line []rune, cursor int) (string, int) {
	start := cursor

	for start > 0 && !isWordBreak(line[start-1]) {
		start--
	}

	return string(line[start:cursor]), cursor - start
}

func isWordBreak(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
