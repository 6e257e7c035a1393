package service

import (
	"context"
	"testing"
	"time"

	bookingservice "gymgrid/internal/bookings/service"
	"gymgrid/pkg/config"
	apperrors "gymgrid/pkg/errors"
	"gymgrid/pkg/logger"
	"gymgrid/pkg/model"
)

type mockReconciler struct {
	refresh  func(ctx context.Context, actor *model.Actor) error
	book     func(ctx context.Context, actor *model.Actor, req *model.BookRequest) (*model.BookResult, error)
	snapshot func() bookingservice.Snapshot
}

func (m *mockReconciler) Refresh(ctx context.Context, actor *model.Actor) error {
	if m.refresh == nil {
		return nil
	}
	return m.refresh(ctx, actor)
}

func (m *mockReconciler) Book(ctx context.Context, actor *model.Actor, req *model.BookRequest) (*model.BookResult, error) {
	return m.book(ctx, actor, req)
}

func (m *mockReconciler) Cancel(ctx context.Context, actor *model.Actor, req *model.CancelRequest) error {
	return nil
}

func (m *mockReconciler) Snapshot() bookingservice.Snapshot {
	return m.snapshot()
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultCapacity:     20,
		DayStart:            "08:00",
		DayEnd:              "22:00",
		SlotMinutes:         15,
		MinVisibleSpanMin:   360,
		SlotPixelHeight:     40,
		MinEventPixelHeight: 36,
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.TEXT,
			Service: "test",
		}),
	}
}

func eventOn(id int, date string, start, end int, name string) model.ScheduleEvent {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		panic(err)
	}
	return model.ScheduleEvent{
		ID:          id,
		Name:        name,
		Room:        "Studio A",
		Date:        d,
		DateKey:     date,
		StartMinute: start,
		EndMinute:   end,
		Capacity:    20,
	}
}

func newTestService(snap bookingservice.Snapshot) *timetableService {
	svc := NewTimetableService(&mockReconciler{
		snapshot: func() bookingservice.Snapshot { return snap },
	}, testConfig()).(*timetableService)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 8, 12, 0, 0, 0, time.Local)
	}
	return svc
}

func clientActor(id int) *model.Actor {
	return &model.Actor{ID: id, Role: model.RoleClient}
}

func TestWeekView_AssemblesSevenDays(t *testing.T) {
	snap := bookingservice.Snapshot{
		Events: []model.ScheduleEvent{
			eventOn(1, "2026-01-05", 540, 600, "Yoga"),
			eventOn(2, "2026-01-05", 570, 630, "Spinning"),
			eventOn(3, "2026-01-07", 600, 660, "Pilates"),
		},
		BookedID: map[int]struct{}{3: {}},
	}
	svc := newTestService(snap)

	view, err := svc.WeekView(context.Background(), clientActor(7), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.WeekStart != "2026-01-05" || view.WeekEnd != "2026-01-11" {
		t.Errorf("unexpected week bounds: %s to %s", view.WeekStart, view.WeekEnd)
	}
	if len(view.Days) != 7 {
		t.Fatalf("expected 7 day columns, got %d", len(view.Days))
	}
	if view.PrevStart != "2025-12-29" || view.NextStart != "2026-01-12" {
		t.Errorf("unexpected navigation targets: prev %s, next %s", view.PrevStart, view.NextStart)
	}
	if view.CurrentStart != "2026-01-05" {
		t.Errorf("unexpected current week: %s", view.CurrentStart)
	}

	monday := view.Days[0]
	if len(monday.Events) != 2 {
		t.Fatalf("expected 2 events on Monday, got %d", len(monday.Events))
	}
	if monday.Events[0].LaneCount != 2 || monday.Events[1].LaneCount != 2 {
		t.Error("overlapping Monday events must split the column")
	}
	if monday.Events[0].Lane == monday.Events[1].Lane {
		t.Error("overlapping events must not share a lane")
	}

	wednesday := view.Days[2]
	if len(wednesday.Events) != 1 {
		t.Fatalf("expected 1 event on Wednesday, got %d", len(wednesday.Events))
	}
	if !wednesday.Events[0].Booked {
		t.Error("class 3 must carry the booked marker")
	}
	if wednesday.Events[0].Bookable {
		t.Error("a booked class is not bookable again")
	}

	for _, day := range view.Days[3:] {
		if len(day.Events) != 0 {
			t.Errorf("expected %s to be empty, got %d events", day.Date, len(day.Events))
		}
	}
}

func TestWeekView_RangeCoversAllEvents(t *testing.T) {
	snap := bookingservice.Snapshot{
		Events: []model.ScheduleEvent{
			eventOn(1, "2026-01-05", 547, 610, "Early"),
			eventOn(2, "2026-01-09", 1200, 1250, "Late"),
		},
	}
	svc := newTestService(snap)

	view, err := svc.WeekView(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Range.MinStart != 540 {
		t.Errorf("expected range start snapped to 540, got %d", view.Range.MinStart)
	}
	if view.Range.MaxEnd != 1260 {
		t.Errorf("expected range end snapped to 1260, got %d", view.Range.MaxEnd)
	}
}

func TestWeekView_EmptyWeekUsesConfiguredWindow(t *testing.T) {
	svc := newTestService(bookingservice.Snapshot{})

	view, err := svc.WeekView(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Range.MinStart != 480 || view.Range.MaxEnd != 1320 {
		t.Errorf("expected default range 480-1320, got %d-%d", view.Range.MinStart, view.Range.MaxEnd)
	}
}

func TestWeekView_ExplicitStartSnapsToMonday(t *testing.T) {
	svc := newTestService(bookingservice.Snapshot{})

	view, err := svc.WeekView(context.Background(), nil, "2026-03-18")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.WeekStart != "2026-03-16" {
		t.Errorf("expected week of 2026-03-16, got %s", view.WeekStart)
	}
}

func TestWeekView_InvalidStart(t *testing.T) {
	svc := newTestService(bookingservice.Snapshot{})

	_, err := svc.WeekView(context.Background(), nil, "not-a-date")
	if err == nil {
		t.Fatal("expected an invalid input error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected invalid input, got %s", appErr.Code)
	}
}

func TestWeekView_RefreshFailurePropagates(t *testing.T) {
	svc := NewTimetableService(&mockReconciler{
		refresh: func(ctx context.Context, actor *model.Actor) error {
			return apperrors.Upstream("gym API is down", 503, nil)
		},
		snapshot: func() bookingservice.Snapshot { return bookingservice.Snapshot{} },
	}, testConfig()).(*timetableService)

	_, err := svc.WeekView(context.Background(), nil, "")
	if err == nil {
		t.Fatal("expected the refresh failure to propagate")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeUpstream {
		t.Errorf("expected upstream error, got %s", appErr.Code)
	}
}

func TestWeekView_NilActorIsReadOnly(t *testing.T) {
	snap := bookingservice.Snapshot{
		Events: []model.ScheduleEvent{eventOn(1, "2026-01-05", 540, 600, "Yoga")},
	}
	svc := newTestService(snap)

	view, err := svc.WeekView(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Days[0].Events[0].Bookable {
		t.Error("an anonymous grid must be read-only")
	}
}

func TestWeekView_StaffRolesAreReadOnly(t *testing.T) {
	snap := bookingservice.Snapshot{
		Events: []model.ScheduleEvent{eventOn(1, "2026-01-05", 540, 600, "Yoga")},
	}
	svc := newTestService(snap)

	trainer := &model.Actor{ID: 3, Role: model.RoleTrainer}
	view, err := svc.WeekView(context.Background(), trainer, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Days[0].Events[0].Bookable {
		t.Error("trainers must get a read-only grid")
	}
}

func TestWeekView_BusyBookingBlocksEverything(t *testing.T) {
	snap := bookingservice.Snapshot{
		Events: []model.ScheduleEvent{
			eventOn(1, "2026-01-05", 540, 600, "Yoga"),
			eventOn(2, "2026-01-05", 700, 760, "Spinning"),
		},
		BusyID: 1,
	}
	svc := newTestService(snap)

	view, err := svc.WeekView(context.Background(), clientActor(7), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	monday := view.Days[0]
	if !monday.Events[0].Busy {
		t.Error("the in-flight class must carry the busy marker")
	}
	if monday.Events[1].Busy {
		t.Error("only the in-flight class carries the busy marker")
	}
	for _, ev := range monday.Events {
		if ev.Bookable {
			t.Errorf("class %d must not be bookable while a booking is in flight", ev.ID)
		}
	}
}

func TestWeekView_FullClassNotBookable(t *testing.T) {
	full := eventOn(1, "2026-01-05", 540, 600, "Yoga")
	full.BookedCount = 20
	snap := bookingservice.Snapshot{Events: []model.ScheduleEvent{full}}
	svc := newTestService(snap)

	view, err := svc.WeekView(context.Background(), clientActor(7), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Days[0].Events[0].Bookable {
		t.Error("a full class is not bookable")
	}
}

func TestListClasses_FiltersByName(t *testing.T) {
	snap := bookingservice.Snapshot{
		Events: []model.ScheduleEvent{
			eventOn(1, "2026-01-05", 540, 600, "Morning Yoga"),
			eventOn(2, "2026-01-06", 600, 660, "Spinning"),
			eventOn(3, "2026-01-07", 700, 760, "Power Yoga"),
		},
	}
	svc := newTestService(snap)

	classes, err := svc.ListClasses(context.Background(), "yoga")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(classes))
	}
	if classes[0].ID != 1 || classes[1].ID != 3 {
		t.Errorf("unexpected matches: %v", classes)
	}

	all, err := svc.ListClasses(context.Background(), "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected blank query to return everything, got %d", len(all))
	}
}
