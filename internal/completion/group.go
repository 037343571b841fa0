package completion

// Group is a tagged set of candidates displayed together under a
// shared heading (spec §4.6), with a simple column layout computed
// from the longest candidate in the group.
type Group struct {
	Tag        string
	Candidates []Candidate

	columnWidth int
}

// NewGroup builds a Group from tag and its candidates, sorting them
// and computing the column width used by Render.
func NewGroup(tag string, candidates []Candidate) Group {
	sortByValue(candidates)

	g := Group{Tag: tag, Candidates: candidates}

	for _, c := range candidates {
		text := c.Display
		if text == "" {
			text = c.Value
		}

		if len(text) > g.columnWidth {
			g.columnWidth = len(text)
		}
	}

	return g
}

// Render lays the group's candidates out in a grid of termWidth
// columns (spec §4.6 "candidates are grid-rendered... falling back to
// one-per-line when a description is present").
func (g Group) Render(termWidth int) []string {
	if termWidth <= 0 {
		termWidth = 80
	}

	hasDescriptions := false

	for _, c := range g.Candidates {
		if c.Description != "" {
			hasDescriptions = true
			break
		}
	}

	if hasDescriptions {
		return g.renderList()
	}

	return g.renderGrid(termWidth)
}

func (g Group) renderList() []string {
	lines := make([]string, 0, len(g.Candidates))

	for _, c := range g.Candidates {
		text := c.Display
		if text == "" {
			text = c.Value
		}

		if c.Description != "" {
			text += "  " + c.Description
		}

		lines = append(lines, text)
	}

	return lines
}

func (g Group) renderGrid(termWidth int) []string {
	colWidth := g.columnWidth + 2
	if colWidth <= 0 {
		colWidth = 1
	}

	perRow := termWidth / colWidth
	if perRow < 1 {
		perRow = 1
	}

	var lines []string

	var row string

	count := 0

	for _, c := range g.Candidates {
		text := c.Display
		if text == "" {
			text = c.Value
		}

		row += padRight(text, colWidth)
		count++

		if count == perRow {
			lines = append(lines, row)
			row = ""
			count = 0
		}
	}

	if count > 0 {
		lines = append(lines, row)
	}

	return lines
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}

	return s
}
