package tablefilter

import (
	"strings"
	"time"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// RowMatches reports whether a row passes every engaged control.
// Absent controls are always-true dimensions, so an empty Controls
// accepts everything.
func RowMatches(row Row, controls Controls, dateCol int) bool {
	text := row.Text()

	if query := normalize(controls.Query); query != "" && !strings.Contains(text, query) {
		return false
	}
	if !matchesSelects(text, controls.Selects) {
		return false
	}

	if controls.Month == "" && controls.DateFrom == "" && controls.DateTo == "" {
		return true
	}

	date, hasDate := RowDate(row, dateCol)
	if !matchesMonth(date, hasDate, controls.Month) {
		return false
	}
	return matchesRange(date, hasDate, controls.DateFrom, controls.DateTo)
}

// Apply recomputes visibility for every row of every table. The pass
// is total and idempotent; it never consults previous visibility.
func Apply(tables []*Table, controls Controls) {
	for _, table := range tables {
		if table == nil {
			continue
		}
		for i := range table.Rows {
			table.Rows[i].Hidden = !RowMatches(table.Rows[i], controls, table.DateCol)
		}
	}
}

func matchesSelects(text string, selects []SelectFilter) bool {
	for _, sel := range selects {
		if !constrains(sel.Label) {
			continue
		}
		if !strings.Contains(text, normalize(sel.Label)) {
			return false
		}
	}
	return true
}

func matchesMonth(date time.Time, hasDate bool, month string) bool {
	if month == "" {
		return true
	}
	want, err := time.Parse(monthLayout, month)
	if err != nil {
		return true
	}
	if !hasDate {
		return false
	}
	return date.Year() == want.Year() && date.Month() == want.Month()
}

func matchesRange(date time.Time, hasDate bool, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	if !hasDate {
		return false
	}

	if from != "" {
		if start, err := time.Parse(dayLayout, from); err == nil && date.Before(start) {
			return false
		}
	}
	if to != "" {
		if end, err := time.Parse(dayLayout, to); err == nil {
			// Inclusive through the final instant of the end day.
			if date.After(end.Add(24*time.Hour - time.Nanosecond)) {
				return false
			}
		}
	}
	return true
}
