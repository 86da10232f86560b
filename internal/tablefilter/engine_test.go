package tablefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func materialsTable() *Table {
	return &Table{
		ID:      "materials",
		Columns: []string{"Code", "Item", "Category", "Received", "Status"},
		DateCol: 3,
		Rows: []Row{
			{Cells: []string{"MAT-001", "Cement (OPC 53)", "Raw Materials", "Jan 15 2026", "In Stock"}},
			{Cells: []string{"MAT-002", "Steel Rebar", "Raw Materials", "Feb 02 2026", "Low Stock"}},
			{Cells: []string{"MAT-003", "Safety Helmet", "Safety Items", "", "In Stock"}},
		},
	}
}

func visibleCount(t *Table) int {
	return len(t.VisibleRows())
}

func TestFreeTextFilter(t *testing.T) {
	table := materialsTable()
	Apply([]*Table{table}, Controls{Query: "cement"})

	rows := table.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Cement (OPC 53)", rows[0].Cells[1])
}

func TestEmptyControlsMatchEverything(t *testing.T) {
	table := materialsTable()
	Apply([]*Table{table}, Controls{})
	assert.Equal(t, len(table.Rows), visibleCount(table))
}

func TestSelectFilterAllImposesNoConstraint(t *testing.T) {
	table := materialsTable()
	for _, label := range []string{"", "All", "all", "All Status", "ALL CATEGORIES"} {
		Apply([]*Table{table}, Controls{Selects: []SelectFilter{{Name: "status", Label: label}}})
		assert.Equal(t, len(table.Rows), visibleCount(table), "label %q", label)
	}
}

func TestSelectFiltersCombineWithAnd(t *testing.T) {
	table := materialsTable()
	Apply([]*Table{table}, Controls{Selects: []SelectFilter{
		{Name: "category", Label: "Raw Materials"},
		{Name: "status", Label: "Low Stock"},
	}})

	rows := table.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Steel Rebar", rows[0].Cells[1])
}

func TestMonthFilterHidesRowsWithoutParseableDate(t *testing.T) {
	table := materialsTable()
	Apply([]*Table{table}, Controls{Month: "2026-03"})
	assert.Equal(t, 0, visibleCount(table))

	Apply([]*Table{table}, Controls{Month: "2026-01"})
	rows := table.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "MAT-001", rows[0].Cells[0])
}

func TestDateRangeFilter(t *testing.T) {
	table := materialsTable()
	Apply([]*Table{table}, Controls{DateFrom: "2026-01-01", DateTo: "2026-01-31"})

	rows := table.VisibleRows()
	require.Len(t, rows, 1, "Feb row and dateless row fall outside January")
	assert.Equal(t, "Jan 15 2026", rows[0].Cells[3])
}

func TestDateRangeBoundsAreInclusive(t *testing.T) {
	table := &Table{DateCol: 0, Rows: []Row{
		{Cells: []string{"2026-01-01"}},
		{Cells: []string{"2026-01-31"}},
	}}
	Apply([]*Table{table}, Controls{DateFrom: "2026-01-01", DateTo: "2026-01-31"})
	assert.Equal(t, 2, visibleCount(table))
}

func TestSingleBoundStillRequiresADate(t *testing.T) {
	table := materialsTable()
	Apply([]*Table{table}, Controls{DateFrom: "2026-02-01"})

	rows := table.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "MAT-002", rows[0].Cells[0])
}

func TestAllDimensionsCombineWithAnd(t *testing.T) {
	table := materialsTable()
	Apply([]*Table{table}, Controls{
		Query:    "raw",
		Selects:  []SelectFilter{{Name: "status", Label: "In Stock"}},
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-31",
	})

	rows := table.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "MAT-001", rows[0].Cells[0])
}

func TestFilterNarrowingIsMonotonic(t *testing.T) {
	base := Controls{Selects: []SelectFilter{{Name: "category", Label: "All Categories"}}}
	narrowed := Controls{
		Selects:  []SelectFilter{{Name: "category", Label: "Raw Materials"}},
		DateFrom: "2026-01-01",
	}

	table := materialsTable()
	Apply([]*Table{table}, base)
	baseVisible := visibleCount(table)

	Apply([]*Table{table}, narrowed)
	narrowedVisible := visibleCount(table)

	assert.LessOrEqual(t, narrowedVisible, baseVisible)

	// Every row visible under the narrow controls is visible under the base.
	for _, row := range table.Rows {
		if RowMatches(row, narrowed, table.DateCol) {
			assert.True(t, RowMatches(row, base, table.DateCol))
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	controls := Controls{Query: "stock", Month: "2026-02"}

	table := materialsTable()
	Apply([]*Table{table}, controls)
	first := make([]bool, len(table.Rows))
	for i, row := range table.Rows {
		first[i] = row.Hidden
	}

	Apply([]*Table{table}, controls)
	for i, row := range table.Rows {
		assert.Equal(t, first[i], row.Hidden, "row %d", i)
	}
}

func TestApplyResetsPreviousPass(t *testing.T) {
	table := materialsTable()
	Apply([]*Table{table}, Controls{Query: "cement"})
	require.Equal(t, 1, visibleCount(table))

	// Clearing the query restores every row.
	Apply([]*Table{table}, Controls{})
	assert.Equal(t, len(table.Rows), visibleCount(table))
}

func TestApplySkipsNilTables(t *testing.T) {
	table := materialsTable()
	assert.NotPanics(t, func() {
		Apply([]*Table{nil, table}, Controls{Query: "steel"})
	})
	assert.Equal(t, 1, visibleCount(table))
}

func TestControlsEmpty(t *testing.T) {
	assert.True(t, Controls{}.Empty())
	assert.True(t, Controls{Selects: []SelectFilter{{Label: "All Status"}}}.Empty())
	assert.False(t, Controls{Query: "x"}.Empty())
	assert.False(t, Controls{Month: "2026-01"}.Empty())
	assert.False(t, Controls{Selects: []SelectFilter{{Label: "Active"}}}.Empty())
}
