package util

import (
	"testing"
	"time"
)

type dated struct {
	name string
	at   time.Time
}

func TestFilterByPeriod_SelectsMatchingMonth(t *testing.T) {
	records := []dated{
		{"in", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"late-in", time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)},
		{"wrong-month", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{"wrong-year", time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	got := FilterByPeriod(records, func(r dated) time.Time { return r.at }, 2024, time.March)

	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	if got[0].name != "in" || got[1].name != "late-in" {
		t.Errorf("Unexpected records: %v", got)
	}
}

func TestFilterByPeriod_NoMatchReturnsEmpty(t *testing.T) {
	records := []dated{
		{"a", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	got := FilterByPeriod(records, func(r dated) time.Time { return r.at }, 2025, time.March)

	if got == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("Expected 0 records, got %d", len(got))
	}
}

func TestFilterByPeriod_OrderPreserved(t *testing.T) {
	records := []dated{
		{"first", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{"second", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"third", time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)},
	}

	got := FilterByPeriod(records, func(r dated) time.Time { return r.at }, 2024, time.June)

	for i, name := range []string{"first", "second", "third"} {
		if got[i].name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, got[i].name)
		}
	}
}
