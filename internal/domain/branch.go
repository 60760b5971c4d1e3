package domain

import "strings"

// HoursEntry maps a day-range key to an opening-hours value.
// The key names either a single weekday ("Friday") or an inclusive span
// ("Monday - Thursday"); the value is "<open> - <close>" with both endpoints
// in 12-hour clock format ("03:00PM - 01:30AM").
type HoursEntry struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

// WeeklyHours is a branch's weekly schedule as an ordered association list.
// Order matters: schedule resolution is first-match-wins, so overlapping
// entries resolve by insertion order. A plain map would make that
// nondeterministic.
type WeeklyHours []HoursEntry

// Represents a single restaurant branch and its static configuration.
// Branch records are seeded once and never mutated at runtime.
type Branch struct {
	BranchID string
	Name     string
	Address  string
	Location Coordinates
	Services []string
	Hours    WeeklyHours
}

// IsSpan reports whether the entry's day key names an inclusive weekday span,
// returning the trimmed start and end day names.
func (e HoursEntry) IsSpan() (start, end string, ok bool) {
	parts := strings.Split(e.Days, " - ")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
