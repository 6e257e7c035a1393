package grid

import (
	"testing"
	"time"
)

func fixedNow(date string) func() time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return d }
}

func TestNavigator_StartsOnMonday(t *testing.T) {
	// Thursday 2026-01-08 belongs to the week of Monday 2026-01-05.
	nav := NewNavigator(fixedNow("2026-01-08"))

	if got := nav.Window().Start.Format("2006-01-02"); got != "2026-01-05" {
		t.Errorf("expected week start 2026-01-05, got %s", got)
	}
}

func TestNavigator_PrevNextRoundTrip(t *testing.T) {
	nav := NewNavigator(fixedNow("2026-01-08"))

	if got := nav.Next().Start.Format("2006-01-02"); got != "2026-01-12" {
		t.Errorf("expected next week 2026-01-12, got %s", got)
	}
	if got := nav.Prev().Start.Format("2006-01-02"); got != "2026-01-05" {
		t.Errorf("expected round trip back to 2026-01-05, got %s", got)
	}
	if got := nav.Prev().Start.Format("2006-01-02"); got != "2025-12-29" {
		t.Errorf("expected previous week 2025-12-29, got %s", got)
	}
}

func TestNavigator_CurrentResetsAfterNavigation(t *testing.T) {
	nav := NewNavigator(fixedNow("2026-01-08"))
	nav.Next()
	nav.Next()

	if got := nav.Current().Start.Format("2006-01-02"); got != "2026-01-05" {
		t.Errorf("expected reset to 2026-01-05, got %s", got)
	}
}

func TestNavigator_Goto(t *testing.T) {
	nav := NewNavigator(fixedNow("2026-01-08"))

	if got := nav.Goto(fixedNow("2026-03-18")()).Start.Format("2006-01-02"); got != "2026-03-16" {
		t.Errorf("expected week of 2026-03-16, got %s", got)
	}
}
