package analytics

import "time"

// WorkingDays counts Monday through Friday days from from to to,
// both inclusive, comparing calendar dates only. Returns 0 when to
// precedes from.
func WorkingDays(from, to time.Time) int {
	from = dateOnly(from)
	to = dateOnly(to)

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

// OverdueDays is the number of whole days today lies past the due date
// adjusted by grace days. Never negative.
func OverdueDays(due time.Time, graceDays int, today time.Time) int {
	adjusted := dateOnly(due).AddDate(0, 0, graceDays)
	days := int(dateOnly(today).Sub(adjusted).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
