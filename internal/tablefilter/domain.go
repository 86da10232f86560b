package tablefilter

import (
	"strings"

	"golang.org/x/text/cases"
)

// Row is one rendered table row. Hidden is transient presentation
// state, recomputed in full on every filter pass.
type Row struct {
	Cells  []string
	Hidden bool
}

// Text returns the row's concatenated, normalized cell text.
func (r Row) Text() string {
	return normalize(strings.Join(r.Cells, " "))
}

// Table is one filterable table. DateCol designates which column holds
// the date governing month and range filters; a negative value falls
// back to the first parseable cell in row order.
type Table struct {
	ID      string
	Title   string
	Columns []string
	DateCol int
	Rows    []Row
}

// VisibleRows returns the rows the last filter pass kept.
func (t *Table) VisibleRows() []Row {
	visible := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if !row.Hidden {
			visible = append(visible, row)
		}
	}
	return visible
}

// SelectFilter is one categorical dropdown bound to a named slot.
// Label carries the chosen option's display label.
type SelectFilter struct {
	Name  string
	Label string
}

// Controls holds the bound filter inputs for one container. Each slot
// is named rather than discovered positionally; an empty slot imposes
// no constraint on its dimension.
type Controls struct {
	Query    string
	Selects  []SelectFilter
	Month    string // YYYY-MM
	DateFrom string // YYYY-MM-DD
	DateTo   string // YYYY-MM-DD
}

// Empty reports whether no control constrains any dimension.
func (c Controls) Empty() bool {
	if normalize(c.Query) != "" || c.Month != "" || c.DateFrom != "" || c.DateTo != "" {
		return false
	}
	for _, sel := range c.Selects {
		if constrains(sel.Label) {
			return false
		}
	}
	return true
}

// normalize lowers, case-folds and trims text for matching.
func normalize(text string) string {
	return strings.TrimSpace(cases.Fold().String(text))
}

// constrains reports whether a select label narrows the row set.
// Empty labels and "All …" placeholder options do not.
func constrains(label string) bool {
	value := normalize(label)
	return value != "" && value != "all" && !strings.HasPrefix(value, "all ")
}
