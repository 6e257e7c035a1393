package grid

import (
	"testing"
	"time"

	"gymgrid/pkg/model"
)

func dated(id int, date string, start, end int) model.ScheduleEvent {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.ScheduleEvent{
		ID:          id,
		Date:        d,
		DateKey:     date,
		StartMinute: start,
		EndMinute:   end,
	}
}

func TestBucket_GroupsByDay(t *testing.T) {
	window := model.NewWeekWindow(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	events := []model.ScheduleEvent{
		dated(1, "2026-01-05", 540, 600),
		dated(2, "2026-01-07", 600, 660),
		dated(3, "2026-01-05", 700, 760),
	}

	buckets := Bucket(events, window)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(buckets))
	}
	monday := buckets["2026-01-05"]
	if len(monday) != 2 {
		t.Fatalf("expected 2 events on Monday, got %d", len(monday))
	}
	if monday[0].ID != 1 || monday[1].ID != 3 {
		t.Errorf("expected input order preserved, got ids %d, %d", monday[0].ID, monday[1].ID)
	}
}

func TestBucket_DropsEventsOutsideWindow(t *testing.T) {
	window := model.NewWeekWindow(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	events := []model.ScheduleEvent{
		dated(1, "2026-01-04", 540, 600),
		dated(2, "2026-01-12", 540, 600),
		dated(3, "2026-01-11", 540, 600),
	}

	buckets := Bucket(events, window)

	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if _, ok := buckets["2026-01-11"]; !ok {
		t.Error("expected Sunday event inside the window")
	}
}

func TestBucket_DropsGridIneligibleEvents(t *testing.T) {
	window := model.NewWeekWindow(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	noTime := dated(1, "2026-01-05", model.NoMinute, model.NoMinute)
	zeroLength := dated(2, "2026-01-05", 600, 600)
	inverted := dated(3, "2026-01-05", 660, 600)
	kept := dated(4, "2026-01-05", 540, 600)

	buckets := Bucket([]model.ScheduleEvent{noTime, zeroLength, inverted, kept}, window)

	monday := buckets["2026-01-05"]
	if len(monday) != 1 || monday[0].ID != 4 {
		t.Errorf("expected only the well-formed event, got %v", monday)
	}
}
