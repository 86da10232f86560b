package tablefilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLooseDateEquivalentStyles(t *testing.T) {
	a, ok := ParseLooseDate("Jan 05 2026")
	require.True(t, ok)
	b, ok := ParseLooseDate("2026-01-05")
	require.True(t, ok)

	assert.Equal(t, a.Year(), b.Year())
	assert.Equal(t, a.Month(), b.Month())
	assert.Equal(t, a.Day(), b.Day())
}

func TestParseLooseDateStyles(t *testing.T) {
	cases := []struct {
		text  string
		year  int
		month time.Month
		day   int
	}{
		{"2026-01-05", 2026, time.January, 5},
		{"Jan 05 2026", 2026, time.January, 5},
		{"Feb 14, 2026", 2026, time.February, 14},
		{"january 5 2026", 2026, time.January, 5},
		{"December 31 2025", 2025, time.December, 31},
		{"  Mar   02   2026 ", 2026, time.March, 2},
		{"2026/03/15", 2026, time.March, 15},
		{"Jan 05 2026 10:30 AM", 2026, time.January, 5},
	}
	for _, tc := range cases {
		parsed, ok := ParseLooseDate(tc.text)
		require.True(t, ok, "expected %q to parse", tc.text)
		assert.Equal(t, tc.year, parsed.Year(), tc.text)
		assert.Equal(t, tc.month, parsed.Month(), tc.text)
		assert.Equal(t, tc.day, parsed.Day(), tc.text)
	}
}

func TestParseLooseDateRejectsGarbage(t *testing.T) {
	for _, text := range []string{"not a date", "", "   ", "Cement (OPC 53)", "xyz 10 2026", "Jan ten 2026", "PO-2026-0114"} {
		_, ok := ParseLooseDate(text)
		assert.False(t, ok, "expected %q not to parse", text)
	}
}

func TestRowDateScansCellsInOrder(t *testing.T) {
	row := Row{Cells: []string{"INV-104", "Acme Builders", "Jan 15 2026", "Feb 15 2026", "Paid"}}

	date, ok := RowDate(row, -1)
	require.True(t, ok)
	assert.Equal(t, time.January, date.Month(), "first parseable cell governs")
}

func TestRowDateDesignatedColumn(t *testing.T) {
	row := Row{Cells: []string{"INV-104", "Acme Builders", "Jan 15 2026", "Feb 15 2026", "Paid"}}

	date, ok := RowDate(row, 3)
	require.True(t, ok)
	assert.Equal(t, time.February, date.Month(), "designated column overrides scan order")

	_, ok = RowDate(row, 4)
	assert.False(t, ok, "designated non-date column yields no date")

	_, ok = RowDate(row, 9)
	assert.False(t, ok, "out-of-range column yields no date")
}

func TestRowDateNoneWhenNoCellParses(t *testing.T) {
	_, ok := RowDate(Row{Cells: []string{"USR-1", "Dian Pratama", "Active"}}, -1)
	assert.False(t, ok)
}
