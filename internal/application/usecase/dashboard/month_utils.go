// Package dashboard contains the farm overview use case.
package dashboard

import "time"

// monthWindow is a single calendar month with an inclusive [Start, End] span
// covering the whole month, and its display label.
type monthWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

// startOfMonth returns midnight on the first day of the month containing t.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// endOfMonth returns the last second of the month containing t. Calendar
// month lengths are respected via AddDate, never a fixed 30-day window.
func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Second)
}

// monthWindows returns the given number of calendar months ending with the
// month containing now, oldest first.
func monthWindows(now time.Time, count int) []monthWindow {
	windows := make([]monthWindow, 0, count)
	for i := count - 1; i >= 0; i-- {
		month := startOfMonth(now).AddDate(0, -i, 0)
		windows = append(windows, monthWindow{
			Start: month,
			End:   endOfMonth(month),
			Label: month.Format("Jan 2006"),
		})
	}
	return windows
}
