package cycle

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartsCycle(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"anchor itself", date(2024, time.January, 8), true},
		{"one cycle later", date(2024, time.February, 5), true},
		{"two cycles later", date(2024, time.March, 4), true},
		{"thirteen cycles later", date(2025, time.January, 6), true},
		{"monday one week after anchor", date(2024, time.January, 15), false},
		{"monday two weeks after anchor", date(2024, time.January, 22), false},
		{"monday three weeks after anchor", date(2024, time.January, 29), false},
		{"tuesday of a cycle week", date(2024, time.February, 6), false},
		{"sunday before a cycle start", date(2024, time.February, 4), false},
		{"monday before the anchor", date(2024, time.January, 1), false},
		{"far before the anchor", date(2023, time.December, 11), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartsCycle(tt.day); got != tt.want {
				t.Errorf("StartsCycle(%s) = %v, want %v", tt.day.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestStartsCycleIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, time.February, 5, 23, 59, 59, 0, time.UTC)
	if !StartsCycle(late) {
		t.Error("expected a cycle start regardless of the time of day")
	}

	// A zone where local Monday evening is already past UTC midnight must
	// still count as the same calendar day.
	tokyo := time.FixedZone("JST", 9*3600)
	local := time.Date(2024, time.February, 5, 20, 0, 0, 0, tokyo)
	if !StartsCycle(local) {
		t.Error("expected a cycle start for a local Monday evening")
	}
}

func TestNextStart(t *testing.T) {
	tests := []struct {
		day  time.Time
		want time.Time
	}{
		{date(2024, time.January, 8), date(2024, time.January, 8)},
		{date(2024, time.January, 9), date(2024, time.February, 5)},
		{date(2024, time.February, 4), date(2024, time.February, 5)},
	}

	for _, tt := range tests {
		if got := NextStart(tt.day); !got.Equal(tt.want) {
			t.Errorf("NextStart(%s) = %s, want %s",
				tt.day.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}
