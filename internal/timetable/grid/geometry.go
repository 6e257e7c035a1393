package grid

import "gymgrid/pkg/model"

// GeometryOptions carries the pixel scale of the rendered grid.
type GeometryOptions struct {
	SlotMinutes     int
	SlotPixelHeight int
	MinEventHeight  int
}

// Rect maps one lane placement to its rectangle inside the day column. Top
// and height scale linearly with minutes relative to the shared range; very
// short events are floored to a minimum height so they stay legible. Lane
// index and lane count split the column width into equal percent slices.
//
// Intervals outside the range are not expected (the range calculator covers
// every eligible event) but are clamped rather than producing negative
// geometry.
func Rect(placement model.LanePlacement, ev model.ScheduleEvent, rng model.TimeRange, opts GeometryOptions) model.EventRect {
	start, end := ev.StartMinute, ev.EndMinute
	if start < rng.MinStart {
		start = rng.MinStart
	}
	if end > rng.MaxEnd {
		end = rng.MaxEnd
	}
	if end < start {
		end = start
	}

	pixelsPerMinute := float64(opts.SlotPixelHeight) / float64(opts.SlotMinutes)

	top := float64(start-rng.MinStart) * pixelsPerMinute
	height := float64(end-start) * pixelsPerMinute
	if height < float64(opts.MinEventHeight) {
		height = float64(opts.MinEventHeight)
	}

	laneCount := placement.LaneCount
	if laneCount < 1 {
		laneCount = 1
	}
	width := 100.0 / float64(laneCount)

	return model.EventRect{
		Top:          top,
		Height:       height,
		LeftPercent:  float64(placement.Lane) * width,
		WidthPercent: width,
	}
}
