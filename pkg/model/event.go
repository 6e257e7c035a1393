package model

import (
	"time"

	"gymgrid/pkg/clock"
)

// NoMinute marks an absent or unparseable start/end time. Events carrying it
// stay out of the week grid but remain listable.
const NoMinute = -1

// RawClass is a loosely-typed class record as returned by the gym API. The
// upstream schema drifted over time, so the same concept can arrive under
// either of two keys (id_c/id, name/class_name, start_date/start_time).
// Pointers distinguish absent numeric fields from zero values.
type RawClass struct {
	IDC         *int    `json:"id_c,omitempty"`
	ID          *int    `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	ClassName   *string `json:"class_name,omitempty"`
	Room        *string `json:"room,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	MaxCapacity *int    `json:"max_capacity,omitempty"`
	BookedCount *int    `json:"booked_count,omitempty"`
}

// ScheduleEvent is the canonical event produced by the normalizer.
type ScheduleEvent struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Room        string    `json:"room"`
	Date        time.Time `json:"-"`
	DateKey     string    `json:"date"`
	StartMinute int       `json:"start_minute"`
	EndMinute   int       `json:"end_minute"`
	Capacity    int       `json:"capacity"`
	BookedCount int       `json:"booked_count"`
}

// TimeEligible reports whether the event carries a positive-duration time
// interval and may therefore be positioned on the week grid.
func (e ScheduleEvent) TimeEligible() bool {
	return e.StartMinute != NoMinute && e.EndMinute != NoMinute &&
		e.StartMinute >= 0 && e.EndMinute <= clock.MinutesPerDay &&
		e.EndMinute > e.StartMinute
}

// Identifiable reports whether the event carries a usable id. Events without
// one are rendered but excluded from booking actions.
func (e ScheduleEvent) Identifiable() bool {
	return e.ID > 0
}
