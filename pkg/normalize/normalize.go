// Package normalize maps the gym API's loosely-typed records onto the
// canonical types the timetable engine works with. Every function tolerates
// missing and alternate field names and never fails: absent numbers coerce to
// zero, absent strings to "-", unusable times to model.NoMinute.
package normalize

import (
	"strings"
	"time"

	"gymgrid/pkg/clock"
	"gymgrid/pkg/model"
)

const missing = "-"

// Class converts one raw class record into a canonical ScheduleEvent. The id
// may arrive under id_c or id, the title under name or class_name, and the
// start under start_date or start_time; the first present value wins.
func Class(raw model.RawClass, defaultCapacity int) model.ScheduleEvent {
	ev := model.ScheduleEvent{
		ID:          firstInt(raw.IDC, raw.ID),
		Name:        firstString(raw.Name, raw.ClassName),
		Room:        firstString(raw.Room),
		StartMinute: model.NoMinute,
		EndMinute:   model.NoMinute,
		Capacity:    capacityOrDefault(raw.MaxCapacity, defaultCapacity),
		BookedCount: nonNegative(raw.BookedCount),
	}

	date, startMin := resolveStart(raw.StartDate, raw.StartTime)
	endMin := resolveEnd(raw.EndDate, raw.EndTime)

	if !date.IsZero() {
		ev.Date = date
		ev.DateKey = clock.DateKey(date)
	}

	if validInterval(startMin, endMin) {
		ev.StartMinute = startMin
		ev.EndMinute = endMin
	}

	return ev
}

// Classes converts a whole fetch result, preserving input order.
func Classes(raws []model.RawClass, defaultCapacity int) []model.ScheduleEvent {
	events := make([]model.ScheduleEvent, 0, len(raws))
	for _, raw := range raws {
		events = append(events, Class(raw, defaultCapacity))
	}
	return events
}

// BookedClassIDs derives the actor's booking set from raw booking records.
// Records reference their class under group_class_id; older payloads only
// carried booking_id, which is used as a fallback reference. Unidentifiable
// records are skipped.
func BookedClassIDs(raws []model.RawBooking) map[int]struct{} {
	ids := make(map[int]struct{}, len(raws))
	for _, raw := range raws {
		if id := firstInt(raw.GroupClassID, raw.BookingID); id > 0 {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// BookingEntries converts raw booking records into display rows.
func BookingEntries(raws []model.RawBooking) []model.BookingEntry {
	entries := make([]model.BookingEntry, 0, len(raws))
	for _, raw := range raws {
		entry := model.BookingEntry{
			BookingID: firstInt(raw.BookingID, raw.ID),
			ClassID:   firstInt(raw.GroupClassID),
			ClassName: firstString(raw.ClassName, raw.Name),
			Room:      firstString(raw.Room),
			Starts:    missing,
		}

		if date, minute := resolveStart(raw.StartDate, raw.StartTime); !date.IsZero() {
			entry.Starts = clock.FormatDateTime(date, minute)
		}

		entries = append(entries, entry)
	}
	return entries
}

// resolveStart determines the calendar date and start minute from the two
// possible start fields. Either field may be a date-only string, a full
// datetime, or (for the time field) a bare clock value.
func resolveStart(dateField, timeField *string) (time.Time, int) {
	var date time.Time
	minute := model.NoMinute

	if dateField != nil {
		if t, hasTime, err := clock.ParseDateTime(*dateField); err == nil {
			date = clock.Midnight(t)
			if hasTime {
				minute = clock.MinuteOfDay(t)
			}
		}
	}

	if timeField != nil && (date.IsZero() || minute == model.NoMinute) {
		if m, err := clock.ParseClock(*timeField); err == nil {
			minute = m
		} else if t, hasTime, err := clock.ParseDateTime(*timeField); err == nil {
			if date.IsZero() {
				date = clock.Midnight(t)
			}
			if hasTime && minute == model.NoMinute {
				minute = clock.MinuteOfDay(t)
			}
		}
	}

	return date, minute
}

// resolveEnd determines the end minute from the two possible end fields.
func resolveEnd(dateField, timeField *string) int {
	for _, field := range []*string{dateField, timeField} {
		if field == nil {
			continue
		}
		if m, err := clock.ParseClock(*field); err == nil {
			return m
		}
		if t, hasTime, err := clock.ParseDateTime(*field); err == nil && hasTime {
			return clock.MinuteOfDay(t)
		}
	}
	return model.NoMinute
}

func validInterval(start, end int) bool {
	return start != model.NoMinute && end != model.NoMinute &&
		start >= 0 && end <= clock.MinutesPerDay && end > start
}

func firstInt(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstString(values ...*string) string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return strings.TrimSpace(*v)
		}
	}
	return missing
}

func capacityOrDefault(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	if *v < 0 {
		return 0
	}
	return *v
}

func nonNegative(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
