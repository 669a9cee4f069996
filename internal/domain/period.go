package domain

import "time"

// Period selects a calendar (year, month) window for period-scoped reports.
// The cash position and inventory valuation ignore it.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Valid reports whether the period names a real calendar month.
func (p Period) Valid() bool {
	return p.Month >= time.January && p.Month <= time.December && p.Year > 0
}

// Start returns midnight on the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}
