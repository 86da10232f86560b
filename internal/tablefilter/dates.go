package tablefilter

import (
	"strconv"
	"strings"
	"time"
)

// monthNames are matched case-insensitively on their first three letters.
var monthNames = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// looseLayouts cover the date styles the console renders into cells.
// Commas are stripped and whitespace collapsed before matching.
var looseLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2 2006 03:04 PM",
	"Jan 2 2006 15:04",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"02 Jan 2006 15:04",
	"2006/01/02",
}

// ParseLooseDate parses human-rendered date text in any of the styles
// the console mixes. Returns false when no style matches.
func ParseLooseDate(text string) (time.Time, bool) {
	cleaned := strings.Join(strings.Fields(strings.ReplaceAll(text, ",", " ")), " ")
	if cleaned == "" {
		return time.Time{}, false
	}

	for _, layout := range looseLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed, true
		}
	}

	return parseMonthDayYear(cleaned)
}

// parseMonthDayYear handles the three-token "Mon DD YYYY" form with the
// month matched on its first three letters.
func parseMonthDayYear(cleaned string) (time.Time, bool) {
	parts := strings.Split(cleaned, " ")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	monthText := strings.ToLower(parts[0])
	if len(monthText) > 3 {
		monthText = monthText[:3]
	}
	month := -1
	for i, name := range monthNames {
		if name == monthText {
			month = i
			break
		}
	}
	if month < 0 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC), true
}

// RowDate returns the date governing a row's month and range filters.
// With a designated column it parses only that cell; otherwise the
// first parseable cell in order wins.
func RowDate(row Row, dateCol int) (time.Time, bool) {
	if dateCol >= 0 {
		if dateCol >= len(row.Cells) {
			return time.Time{}, false
		}
		return ParseLooseDate(row.Cells[dateCol])
	}
	for _, cell := range row.Cells {
		if parsed, ok := ParseLooseDate(cell); ok {
			return parsed, true
		}
	}
	return time.Time{}, false
}
