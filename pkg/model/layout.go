package model

import (
	"time"

	"gymgrid/pkg/clock"
)

// WeekWindow is the displayed week. Start is always a Monday at local
// midnight; the window spans seven days inclusive.
type WeekWindow struct {
	Start time.Time
}

func NewWeekWindow(t time.Time) WeekWindow {
	return WeekWindow{Start: clock.WeekStart(t)}
}

// End returns the last day of the window (Start + 6 days).
func (w WeekWindow) End() time.Time {
	return clock.AddDays(w.Start, clock.DaysPerWeek-1)
}

// Contains reports whether a calendar date falls inside the window.
func (w WeekWindow) Contains(date time.Time) bool {
	d := clock.Midnight(date)
	return !d.Before(w.Start) && !d.After(w.End())
}

// Day returns the window's i-th day (0 = Monday).
func (w WeekWindow) Day(i int) time.Time {
	return clock.AddDays(w.Start, i)
}

// TimeRange is the shared time-of-day span rendered for the whole week, in
// minutes since midnight. All seven day columns share one axis.
type TimeRange struct {
	MinStart int `json:"min_start"`
	MaxEnd   int `json:"max_end"`
}

// Span returns the range length in minutes.
func (r TimeRange) Span() int {
	return r.MaxEnd - r.MinStart
}

// LanePlacement assigns one event of a day to a horizontal lane. Events on
// the same day with overlapping intervals never share a lane; LaneCount is
// the day-wide maximum concurrency, identical for every event of that day.
type LanePlacement struct {
	EventID   int `json:"event_id"`
	Lane      int `json:"lane"`
	LaneCount int `json:"lane_count"`
}

// EventRect is the pixel/percent geometry of one event inside its day column.
type EventRect struct {
	Top          float64 `json:"top"`
	Height       float64 `json:"height"`
	LeftPercent  float64 `json:"left_percent"`
	WidthPercent float64 `json:"width_percent"`
}

// PlacedEvent is a fully laid-out event ready for rendering.
type PlacedEvent struct {
	ScheduleEvent
	Lane      int       `json:"lane"`
	LaneCount int       `json:"lane_count"`
	Rect      EventRect `json:"rect"`
	Booked    bool      `json:"booked"`
	Bookable  bool      `json:"bookable"`
	Busy      bool      `json:"busy"`
}

// DayColumn is one rendered day of the week grid.
type DayColumn struct {
	Date   string        `json:"date"`
	Events []PlacedEvent `json:"events"`
}

// WeekView is the complete render model for one displayed week.
type WeekView struct {
	WeekStart    string      `json:"week_start"`
	WeekEnd      string      `json:"week_end"`
	Range        TimeRange   `json:"range"`
	SlotMinutes  int         `json:"slot_minutes"`
	Days         []DayColumn `json:"days"`
	PrevStart    string      `json:"prev_start"`
	NextStart    string      `json:"next_start"`
	CurrentStart string      `json:"current_start"`
}
