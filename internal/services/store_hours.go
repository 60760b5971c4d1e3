package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"kings-crust-service/internal/domain"
)

// Canonical weekday order, Sunday=0 through Saturday=6.
// This ordering matches time.Weekday and is load-bearing: wraparound
// day-range matching ("Friday - Sunday") depends on it.
var daysOfWeek = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ClockTime is a parsed wall-clock time in 24-hour form.
type ClockTime struct {
	Hours   int
	Minutes int
}

// MinuteOfDay returns the time as minutes since midnight, in [0, 1439].
func (c ClockTime) MinuteOfDay() int { return c.Hours*60 + c.Minutes }

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// ParseClock parses a 12-hour clock string such as "03:00PM" or "11:59 pm"
// into 24-hour form. Matching is case-insensitive and ignores surrounding
// whitespace. The hour must be 1-12 and the minute 00-59; anything else,
// including out-of-range values like "13:00 PM", reports ok=false. Callers
// must check ok before using the result.
func ParseClock(text string) (ClockTime, bool) {
	m := clockPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(text)))
	if m == nil {
		return ClockTime{}, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return ClockTime{}, false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return ClockTime{}, false
	}
	if hours < 1 || hours > 12 || minutes > 59 {
		return ClockTime{}, false
	}

	switch m[3] {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}

	return ClockTime{Hours: hours, Minutes: minutes}, true
}

// scheduleFor resolves the opening-hours string that applies to the given
// weekday. Entries are scanned in insertion order and the first match wins.
// Span keys ("Monday - Thursday") match inclusively; a span whose end day
// precedes its start day wraps past Saturday into Sunday. Entries naming an
// unrecognized weekday are skipped. Single-day keys match by exact name.
func scheduleFor(hours domain.WeeklyHours, day time.Weekday) (string, bool) {
	today := int(day)

	for _, entry := range hours {
		if start, end, ok := entry.IsSpan(); ok {
			startIdx := dayIndex(start)
			endIdx := dayIndex(end)
			if startIdx == -1 || endIdx == -1 {
				continue
			}

			if startIdx <= endIdx {
				if today >= startIdx && today <= endIdx {
					return entry.Hours, true
				}
			} else if today >= startIdx || today <= endIdx {
				return entry.Hours, true
			}

			continue
		}

		if strings.TrimSpace(entry.Days) == daysOfWeek[today] {
			return entry.Hours, true
		}
	}

	return "", false
}

func dayIndex(name string) int {
	for i, d := range daysOfWeek {
		if d == name {
			return i
		}
	}
	return -1
}

// OpenStatus is the result of evaluating a branch schedule at a point in time.
type OpenStatus struct {
	IsOpen bool
	Status string
}

const (
	statusOpenNow = "Open Now"
	statusClosed  = "Closed"
)

// EvaluateOpen decides whether a branch with the given weekly schedule is open
// at the given moment.
//
// Every failure path degrades to closed: a day with no schedule entry, a
// malformed range string, or an unparseable endpoint all yield
// {false, "Closed"}. The evaluator never claims a branch is open on
// ambiguous data.
//
// Windows whose close time precedes their open time cross midnight: a
// Tuesday "03:00PM - 01:30AM" window is open Tuesday 11 PM. An entry whose
// open and close times are equal means open all day. The open boundary is
// inclusive, the close boundary exclusive.
func EvaluateOpen(hours domain.WeeklyHours, now time.Time) OpenStatus {
	closed := OpenStatus{IsOpen: false, Status: statusClosed}

	schedule, ok := scheduleFor(hours, now.Weekday())
	if !ok {
		return closed
	}

	parts := strings.Split(schedule, " - ")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return closed
	}

	openTime, okOpen := ParseClock(parts[0])
	closeTime, okClose := ParseClock(parts[1])
	if !okOpen || !okClose {
		return closed
	}

	current := now.Hour()*60 + now.Minute()
	openMin := openTime.MinuteOfDay()
	closeMin := closeTime.MinuteOfDay()

	var isOpen bool
	switch {
	case closeMin == openMin:
		isOpen = true
	case closeMin < openMin:
		isOpen = current >= openMin || current < closeMin
	default:
		isOpen = current >= openMin && current < closeMin
	}

	if !isOpen {
		return closed
	}
	return OpenStatus{IsOpen: true, Status: statusOpenNow}
}
