// Package report contains the financial report use cases.
package report

import (
	"fmt"
	"time"
)

// reportDateLayouts are the accepted date formats for report boundaries,
// tried in order. ISO calendar dates are canonical; the timestamp forms are
// tolerated for callers that pass a full instant.
var reportDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseReportDate parses a date-range boundary.
func parseReportDate(value string) (time.Time, error) {
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// startOfYear returns midnight on January 1st of the year containing t.
func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last second of the day containing t, so an inclusive
// end boundary covers the whole day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
