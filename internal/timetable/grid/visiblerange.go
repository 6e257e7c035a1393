package grid

import (
	"gymgrid/pkg/clock"
	"gymgrid/pkg/model"
)

// RangeOptions carries the configurable bounds of the visible time window.
type RangeOptions struct {
	SlotMinutes  int
	MinSpan      int
	DefaultStart int
	DefaultEnd   int
}

// VisibleRange derives the time-of-day span shared by all seven day columns
// of the displayed week. With no time-eligible events the configured default
// window applies. Otherwise the extremes across the whole week are snapped
// outward to slot boundaries, clamped to the day, and widened to the minimum
// span by extending the upper bound (capped at midnight, then lowering the
// start if still short).
func VisibleRange(buckets map[string][]model.ScheduleEvent, opts RangeOptions) model.TimeRange {
	minStart, maxEnd := -1, -1
	for _, events := range buckets {
		for _, ev := range events {
			if minStart < 0 || ev.StartMinute < minStart {
				minStart = ev.StartMinute
			}
			if ev.EndMinute > maxEnd {
				maxEnd = ev.EndMinute
			}
		}
	}

	if minStart < 0 {
		return model.TimeRange{MinStart: opts.DefaultStart, MaxEnd: opts.DefaultEnd}
	}

	minStart = clock.SnapDown(minStart, opts.SlotMinutes)
	maxEnd = clock.SnapUp(maxEnd, opts.SlotMinutes)

	if minStart < 0 {
		minStart = 0
	}
	if maxEnd > clock.MinutesPerDay {
		maxEnd = clock.MinutesPerDay
	}

	if maxEnd-minStart < opts.MinSpan {
		maxEnd = minStart + opts.MinSpan
		if maxEnd > clock.MinutesPerDay {
			maxEnd = clock.MinutesPerDay
			if start := maxEnd - opts.MinSpan; start >= 0 {
				minStart = start
			} else {
				minStart = 0
			}
		}
	}

	return model.TimeRange{MinStart: minStart, MaxEnd: maxEnd}
}
