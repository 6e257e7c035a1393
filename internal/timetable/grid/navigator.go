package grid

import (
	"time"

	"gymgrid/pkg/clock"
	"gymgrid/pkg/model"
)

// Navigator holds the currently displayed week start. Navigation is a pure
// view filter: it changes which events participate in bucketing, never what
// has been fetched.
type Navigator struct {
	start time.Time
	now   func() time.Time
}

// NewNavigator starts at the week containing the present moment. The now
// function is injectable for testing.
func NewNavigator(now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}
	return &Navigator{
		start: clock.WeekStart(now()),
		now:   now,
	}
}

// Window returns the displayed week.
func (n *Navigator) Window() model.WeekWindow {
	return model.WeekWindow{Start: n.start}
}

// Goto jumps to the week containing t and returns the new window.
func (n *Navigator) Goto(t time.Time) model.WeekWindow {
	n.start = clock.WeekStart(t)
	return n.Window()
}

// Prev shifts the displayed week back by exactly seven days.
func (n *Navigator) Prev() model.WeekWindow {
	n.start = clock.AddDays(n.start, -clock.DaysPerWeek)
	return n.Window()
}

// Next shifts the displayed week forward by exactly seven days.
func (n *Navigator) Next() model.WeekWindow {
	n.start = clock.AddDays(n.start, clock.DaysPerWeek)
	return n.Window()
}

// Current resets to the Monday on or before the present moment.
func (n *Navigator) Current() model.WeekWindow {
	n.start = clock.WeekStart(n.now())
	return n.Window()
}
