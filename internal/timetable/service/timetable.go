package service

import (
	"context"
	"strings"
	"time"

	bookingservice "gymgrid/internal/bookings/service"
	"gymgrid/internal/timetable/grid"
	"gymgrid/pkg/clock"
	"gymgrid/pkg/config"
	apperrors "gymgrid/pkg/errors"
	"gymgrid/pkg/model"
)

type TimetableService interface {
	WeekView(ctx context.Context, actor *model.Actor, start string) (*model.WeekView, error)
	ListClasses(ctx context.Context, query string) ([]model.ScheduleEvent, error)
}

type timetableService struct {
	reconciler bookingservice.BookingReconciler
	cfg        *config.Config
	now        func() time.Time
}

func NewTimetableService(reconciler bookingservice.BookingReconciler, cfg *config.Config) TimetableService {
	return &timetableService{
		reconciler: reconciler,
		cfg:        cfg,
		now:        time.Now,
	}
}

// WeekView builds the complete render model for one displayed week: fresh
// upstream state, day buckets, the shared visible range, lane packing and
// pixel geometry, plus per-event booking flags for the given actor.
func (s *timetableService) WeekView(ctx context.Context, actor *model.Actor, start string) (*model.WeekView, error) {
	window, err := s.resolveWindow(start)
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.Refresh(ctx, actor); err != nil {
		return nil, err
	}
	snap := s.reconciler.Snapshot()

	buckets := grid.Bucket(snap.Events, window)
	rng := grid.VisibleRange(buckets, grid.RangeOptions{
		SlotMinutes:  s.cfg.SlotMinutes,
		MinSpan:      s.cfg.MinVisibleSpanMin,
		DefaultStart: s.cfg.DayStartMinute(),
		DefaultEnd:   s.cfg.DayEndMinute(),
	})
	geometry := grid.GeometryOptions{
		SlotMinutes:     s.cfg.SlotMinutes,
		SlotPixelHeight: s.cfg.SlotPixelHeight,
		MinEventHeight:  s.cfg.MinEventPixelHeight,
	}

	days := make([]model.DayColumn, clock.DaysPerWeek)
	for i := 0; i < clock.DaysPerWeek; i++ {
		date := window.Day(i)
		dateKey := clock.DateKey(date)
		events := buckets[dateKey]
		placements := grid.PackLanes(events)

		placed := make([]model.PlacedEvent, 0, len(events))
		for j, ev := range events {
			placed = append(placed, s.placeEvent(ev, placements[j], rng, geometry, actor, snap))
		}
		days[i] = model.DayColumn{Date: dateKey, Events: placed}
	}

	view := &model.WeekView{
		WeekStart:    clock.DateKey(window.Start),
		WeekEnd:      clock.DateKey(window.End()),
		Range:        rng,
		SlotMinutes:  s.cfg.SlotMinutes,
		Days:         days,
		PrevStart:    clock.DateKey(clock.AddDays(window.Start, -clock.DaysPerWeek)),
		NextStart:    clock.DateKey(clock.AddDays(window.Start, clock.DaysPerWeek)),
		CurrentStart: clock.DateKey(clock.WeekStart(s.now())),
	}

	s.cfg.Log.Debug("Week view assembled",
		"week_start", view.WeekStart,
		"range_start", rng.MinStart,
		"range_end", rng.MaxEnd,
	)
	return view, nil
}

// ListClasses returns the normalized schedule, optionally filtered by a
// case-insensitive substring of the class name or room. Events without a
// usable time are listable even though the grid drops them.
func (s *timetableService) ListClasses(ctx context.Context, query string) ([]model.ScheduleEvent, error) {
	if err := s.reconciler.Refresh(ctx, nil); err != nil {
		return nil, err
	}
	snap := s.reconciler.Snapshot()

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return snap.Events, nil
	}

	filtered := make([]model.ScheduleEvent, 0, len(snap.Events))
	for _, ev := range snap.Events {
		if strings.Contains(strings.ToLower(ev.Name), query) ||
			strings.Contains(strings.ToLower(ev.Room), query) {
			filtered = append(filtered, ev)
		}
	}
	return filtered, nil
}

func (s *timetableService) resolveWindow(start string) (model.WeekWindow, error) {
	nav := grid.NewNavigator(s.now)
	if start == "" {
		return nav.Window(), nil
	}
	t, err := clock.ParseDate(start)
	if err != nil {
		return model.WeekWindow{}, apperrors.InvalidInput("start must be a date in YYYY-MM-DD format")
	}
	return nav.Goto(t), nil
}

func (s *timetableService) placeEvent(
	ev model.ScheduleEvent,
	placement model.LanePlacement,
	rng model.TimeRange,
	geometry grid.GeometryOptions,
	actor *model.Actor,
	snap bookingservice.Snapshot,
) model.PlacedEvent {
	booked := snap.Booked(ev.ID)
	busy := snap.BusyID != 0

	return model.PlacedEvent{
		ScheduleEvent: ev,
		Lane:          placement.Lane,
		LaneCount:     placement.LaneCount,
		Rect:          grid.Rect(placement, ev, rng, geometry),
		Booked:        booked,
		Bookable: actor.CanBook() && ev.Identifiable() && !booked && !busy &&
			ev.BookedCount < ev.Capacity,
		Busy: snap.BusyID == ev.ID,
	}
}
