// Package grid implements the weekly timetable layout pipeline: day
// bucketing, the shared visible time range, lane packing of overlapping
// events, and pixel geometry. Everything here is pure computation over
// already-normalized events.
package grid

import (
	"gymgrid/pkg/model"
)

// Bucket groups events by calendar date key within the given week window.
// Events outside the window and events without a usable time interval are
// dropped; they cannot be positioned on the grid. Input order is preserved
// within each bucket.
func Bucket(events []model.ScheduleEvent, window model.WeekWindow) map[string][]model.ScheduleEvent {
	buckets := make(map[string][]model.ScheduleEvent)
	for _, ev := range events {
		if !ev.TimeEligible() || ev.DateKey == "" {
			continue
		}
		if !window.Contains(ev.Date) {
			continue
		}
		buckets[ev.DateKey] = append(buckets[ev.DateKey], ev)
	}
	return buckets
}
