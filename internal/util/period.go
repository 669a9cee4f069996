package util

import "time"

// FilterByPeriod returns the records whose date falls in the given calendar
// (year, month) window. Comparison uses the date's own calendar fields; no
// timezone conversion is performed. Returns an empty slice when nothing
// matches.
func FilterByPeriod[T any](records []T, date func(T) time.Time, year int, month time.Month) []T {
	filtered := make([]T, 0, len(records))
	for _, r := range records {
		d := date(r)
		if d.Year() == year && d.Month() == month {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
