// Package clock holds the wall-clock arithmetic used by the timetable grid:
// date-only parsing, week boundaries, and minute-of-day conversions. All
// functions operate on local calendar dates and perform no timezone
// conversions beyond local wall-clock arithmetic.
package clock

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinutesPerDay = 1440
	DaysPerWeek   = 7

	DateLayout = "2006-01-02"
)

// datetimeLayouts are tried in order when a source field carries more than a
// bare date. The gym API emits both ISO datetimes and date-only strings
// depending on which column the class was created with.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseDate parses a date-only string into a local calendar date (midnight,
// no time component).
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// ParseDateTime accepts either a date-only string or a datetime string and
// returns the parsed local time plus whether a time component was present.
func ParseDateTime(value string) (t time.Time, hasTime bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, fmt.Errorf("empty datetime")
	}

	if t, err := time.ParseInLocation(DateLayout, value, time.Local); err == nil {
		return t, false, nil
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized datetime %q", value)
}

// ParseClock converts a "HH:MM" or "HH:MM:SS" string to minutes since local
// midnight. Seconds are discarded.
func ParseClock(value string) (int, error) {
	value = strings.TrimSpace(value)
	if len(value) > 5 {
		value = value[:5]
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinuteOfDay returns minutes since midnight for t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinute renders a minute-of-day value as "HH:MM".
func FormatMinute(minute int) string {
	if minute < 0 {
		minute = 0
	}
	if minute > MinutesPerDay {
		minute = MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// SnapDown rounds a minute value down to the nearest slot boundary.
func SnapDown(minute, slot int) int {
	if slot <= 0 {
		return minute
	}
	if minute < 0 {
		minute = 0
	}
	return minute - minute%slot
}

// SnapUp rounds a minute value up to the nearest slot boundary.
func SnapUp(minute, slot int) int {
	if slot <= 0 {
		return minute
	}
	if minute < 0 {
		minute = 0
	}
	if rem := minute % slot; rem != 0 {
		minute += slot - rem
	}
	return minute
}

// Midnight truncates t to its local calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday on or before t, at local midnight.
func WeekStart(t time.Time) time.Time {
	d := Midnight(t)
	offset := (int(d.Weekday()) + 6) % DaysPerWeek
	return d.AddDate(0, 0, -offset)
}

// AddDays shifts a calendar date by n days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DateKey renders a calendar date as its "YYYY-MM-DD" bucket key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime renders a calendar date plus an optional minute-of-day for
// display. A negative minute yields the date alone. Local wall-clock only, no
// UTC shifting of date-only values.
func FormatDateTime(date time.Time, minute int) string {
	if minute < 0 {
		return date.Format("02.01.2006")
	}
	return date.Format("02.01.2006") + " " + FormatMinute(minute)
}

// SameDate reports whether two times fall on the same local calendar date.
func SameDate(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}
