package analysis

import (
	"sort"
	"strings"
)

// SortedResults returns the rows in render order under the current sort
// state. It is a pure projection: stored results are never reordered.
func (c *Controller) SortedResults() []Row {
	rows := make([]Row, len(c.state.Results))
	copy(rows, c.state.Results)

	field := c.state.Sort.Field
	descending := c.state.Sort.Descending

	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			i, j = j, i
		}

		return lessByField(rows[i], rows[j], field)
	})

	return rows
}

// lessByField compares numerically for numeric columns and by
// case-insensitive string form for everything else.
func lessByField(a, b Row, field SortField) bool {
	if field.numeric() {
		return a.numericValue(field) < b.numericValue(field)
	}

	return strings.ToLower(a.stringValue(field)) < strings.ToLower(b.stringValue(field))
}
