// Package cycle implements the 4-week cycle gate for slide generation runs.
package cycle

import "time"

// Anchor is the first Monday of the first cycle. Every cycle start is a
// whole multiple of 4 weeks after this date.
var Anchor = time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

const weeksPerCycle = 4

// StartsCycle reports whether today begins a new 4-week cycle: the day must
// be a Monday and the whole-week offset from the anchor a non-negative
// multiple of 4. Only the calendar date matters; the time of day and zone
// offset of the argument are discarded.
func StartsCycle(today time.Time) bool {
	if today.Weekday() != time.Monday {
		return false
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(Anchor).Hours() / 24)
	if days < 0 {
		return false
	}

	weeks := days / 7
	return weeks%weeksPerCycle == 0
}

// NextStart returns the first cycle start on or after today. Useful for
// logging when a slides run is skipped.
func NextStart(today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for !StartsCycle(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
