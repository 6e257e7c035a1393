package service

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingerrors "gymgrid/internal/bookings/errors"
	"gymgrid/internal/bookings/repository"
	"gymgrid/internal/bookings/validator"
	timetablerepo "gymgrid/internal/timetable/repository"
	"gymgrid/pkg/clock"
	"gymgrid/pkg/config"
	apperrors "gymgrid/pkg/errors"
	"gymgrid/pkg/model"
	"gymgrid/pkg/normalize"
)

// Snapshot is an immutable copy of the reconciled booking state, safe to
// read without holding the reconciler's lock.
type Snapshot struct {
	Events   []model.ScheduleEvent
	BookedID map[int]struct{}
	Entries  []model.BookingEntry
	BusyID   int
}

// Booked reports whether the class id is in the actor's confirmed set.
func (s Snapshot) Booked(classID int) bool {
	_, ok := s.BookedID[classID]
	return ok
}

// BookingReconciler owns the mutable view state: the normalized schedule,
// the actor's confirmed booking set, and the single in-flight booking. All
// upstream responses are reconciled through it; consumers only ever see
// snapshots.
type BookingReconciler interface {
	Refresh(ctx context.Context, actor *model.Actor) error
	Book(ctx context.Context, actor *model.Actor, req *model.BookRequest) (*model.BookResult, error)
	Cancel(ctx context.Context, actor *model.Actor, req *model.CancelRequest) error
	Snapshot() Snapshot
}

type bookingReconciler struct {
	classes   timetablerepo.ClassSource
	bookings  repository.BookingSource
	validator *validator.BookingValidator
	cfg       *config.Config
	now       func() time.Time

	mu      sync.Mutex
	events  []model.ScheduleEvent
	booked  map[int]struct{}
	entries []model.BookingEntry
	busyID  int
	gen     uint64
}

func NewBookingReconciler(
	classes timetablerepo.ClassSource,
	bookings repository.BookingSource,
	validator *validator.BookingValidator,
	cfg *config.Config,
) BookingReconciler {
	return &bookingReconciler{
		classes:   classes,
		bookings:  bookings,
		validator: validator,
		cfg:       cfg,
		now:       time.Now,
		booked:    map[int]struct{}{},
	}
}

// Refresh replaces the schedule and the booked set wholesale from upstream.
// A schedule fetch failure keeps the previous state and surfaces the error.
// A bookings fetch failure degrades to an empty booked set so the grid still
// renders. Responses from a superseded refresh are discarded.
func (r *bookingReconciler) Refresh(ctx context.Context, actor *model.Actor) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	raw, err := r.classes.FetchClasses(ctx)
	if err != nil {
		r.cfg.Log.Error("Failed to fetch class schedule", "error", err)
		return err
	}
	events := normalize.Classes(raw, r.cfg.DefaultCapacity)

	booked := map[int]struct{}{}
	var entries []model.BookingEntry
	if actor != nil && actor.ID > 0 {
		rawBookings, err := r.bookings.FetchMyBookings(ctx, actor.ID)
		if err != nil {
			r.cfg.Log.Warn("Failed to fetch bookings, rendering without booked markers",
				"actor_id", actor.ID,
				"error", err,
			)
		} else {
			booked = normalize.BookedClassIDs(rawBookings)
			entries = normalize.BookingEntries(rawBookings)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		r.cfg.Log.Debug("Discarding stale refresh", "generation", gen, "current", r.gen)
		return nil
	}
	r.events = events
	r.booked = booked
	r.entries = entries

	r.cfg.Log.Info("Schedule reconciled",
		"classes", len(events),
		"booked", len(booked),
	)
	return nil
}

// Book issues the booking mutation for one class. At most one booking is in
// flight at a time; a class already in the booked set is confirmed locally
// without calling upstream. On success both the schedule (capacity counters
// may have moved) and the booked set are re-fetched so the local state
// reflects what upstream actually recorded.
func (r *bookingReconciler) Book(ctx context.Context, actor *model.Actor, req *model.BookRequest) (*model.BookResult, error) {
	if err := r.validator.Validate(req); err != nil {
		r.cfg.Log.Warn("Booking request validation failed", "error", err)
		return nil, apperrors.Validation("Booking request validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if !actor.CanBook() {
		return nil, apperrors.Forbidden("Only clients can book classes")
	}

	if err := r.acquire(req.ClassID); err != nil {
		switch {
		case errors.Is(err, bookingerrors.ErrBookingInFlight):
			return nil, apperrors.Conflict("Another booking is already in progress")
		case errors.Is(err, bookingerrors.ErrAlreadyBooked):
			return nil, apperrors.Conflict("You are already booked for this class")
		case errors.Is(err, bookingerrors.ErrNotBookable):
			return nil, apperrors.Conflict("Sorry, no places left (Full capacity)")
		case errors.Is(err, bookingerrors.ErrUnknownClass):
			return nil, apperrors.NotFoundWithID("Class", req.ClassID)
		default:
			return nil, apperrors.Internal("Failed to start booking", err)
		}
	}
	defer r.release()

	result, err := r.bookings.Book(ctx, actor.ID, req.ClassID)
	if err != nil {
		r.cfg.Log.Error("Booking failed",
			"actor_id", actor.ID,
			"class_id", req.ClassID,
			"error", err,
		)
		return nil, err
	}

	r.mu.Lock()
	r.booked[req.ClassID] = struct{}{}
	r.mu.Unlock()

	// Best effort: the optimistic marker above already covers the class
	// just booked if this re-fetch fails.
	if err := r.Refresh(ctx, actor); err != nil {
		r.cfg.Log.Warn("Failed to refresh schedule after booking",
			"actor_id", actor.ID,
			"error", err,
		)
	}

	r.cfg.Log.Info("Booking confirmed",
		"actor_id", actor.ID,
		"class_id", req.ClassID,
		"booking_id", result.BookingID,
	)
	return result, nil
}

// Cancel removes the actor's booking for one class. It shares the single
// in-flight slot with Book, so at most one booking mutation runs at a time.
// Bookings whose class has already started stay as they are. On success the
// class is dropped from the local booked set immediately, then the full state
// is re-fetched.
func (r *bookingReconciler) Cancel(ctx context.Context, actor *model.Actor, req *model.CancelRequest) error {
	if err := r.validator.ValidateCancel(req); err != nil {
		r.cfg.Log.Warn("Cancellation request validation failed", "error", err)
		return apperrors.Validation("Cancellation request validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if !actor.CanBook() {
		return apperrors.Forbidden("Only clients can cancel bookings")
	}

	if err := r.acquireCancel(req.ClassID); err != nil {
		switch {
		case errors.Is(err, bookingerrors.ErrBookingInFlight):
			return apperrors.Conflict("Another booking is already in progress")
		case errors.Is(err, bookingerrors.ErrPastBooking):
			return apperrors.Conflict("Past bookings cannot be cancelled")
		case errors.Is(err, bookingerrors.ErrNotBooked):
			return apperrors.NotFoundWithID("Booking", req.ClassID)
		default:
			return apperrors.Internal("Failed to start cancellation", err)
		}
	}
	defer r.release()

	if err := r.bookings.Cancel(ctx, actor.ID, req.ClassID); err != nil {
		r.cfg.Log.Error("Cancellation failed",
			"actor_id", actor.ID,
			"class_id", req.ClassID,
			"error", err,
		)
		return err
	}

	r.mu.Lock()
	delete(r.booked, req.ClassID)
	entries := r.entries[:0]
	for _, entry := range r.entries {
		if entry.ClassID != req.ClassID {
			entries = append(entries, entry)
		}
	}
	r.entries = entries
	r.mu.Unlock()

	// Best effort: the local removal above already covers the cancelled
	// class if this re-fetch fails.
	if err := r.Refresh(ctx, actor); err != nil {
		r.cfg.Log.Warn("Failed to refresh schedule after cancellation",
			"actor_id", actor.ID,
			"error", err,
		)
	}

	r.cfg.Log.Info("Booking cancelled",
		"actor_id", actor.ID,
		"class_id", req.ClassID,
	)
	return nil
}

// Snapshot copies the current state for lock-free reads.
func (r *bookingReconciler) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]model.ScheduleEvent, len(r.events))
	copy(events, r.events)

	booked := make(map[int]struct{}, len(r.booked))
	for id := range r.booked {
		booked[id] = struct{}{}
	}

	entries := make([]model.BookingEntry, len(r.entries))
	copy(entries, r.entries)

	return Snapshot{
		Events:   events,
		BookedID: booked,
		Entries:  entries,
		BusyID:   r.busyID,
	}
}

// acquire reserves the single in-flight booking slot for classID after
// checking the local guards.
func (r *bookingReconciler) acquire(classID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.busyID != 0 {
		return bookingerrors.ErrBookingInFlight
	}
	if _, ok := r.booked[classID]; ok {
		return bookingerrors.ErrAlreadyBooked
	}
	ev, known := r.eventLocked(classID)
	if !known && len(r.events) > 0 {
		return bookingerrors.ErrUnknownClass
	}
	if known && ev.BookedCount >= ev.Capacity {
		return bookingerrors.ErrNotBookable
	}

	r.busyID = classID
	return nil
}

// acquireCancel reserves the same in-flight slot for a cancellation.
func (r *bookingReconciler) acquireCancel(classID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.busyID != 0 {
		return bookingerrors.ErrBookingInFlight
	}
	// An empty booked set means nothing was fetched yet; defer to upstream.
	if _, ok := r.booked[classID]; !ok && len(r.booked) > 0 {
		return bookingerrors.ErrNotBooked
	}
	if r.pastLocked(classID) {
		return bookingerrors.ErrPastBooking
	}

	r.busyID = classID
	return nil
}

func (r *bookingReconciler) release() {
	r.mu.Lock()
	r.busyID = 0
	r.mu.Unlock()
}

// eventLocked finds the class on the current schedule. An empty schedule
// means nothing was fetched yet, so missing classes are deferred to upstream.
func (r *bookingReconciler) eventLocked(classID int) (model.ScheduleEvent, bool) {
	for _, ev := range r.events {
		if ev.ID == classID {
			return ev, true
		}
	}
	return model.ScheduleEvent{}, false
}

// pastLocked reports whether the class has already started. Classes without
// a usable date count as upcoming; date-only classes stay cancellable until
// the end of their day.
func (r *bookingReconciler) pastLocked(classID int) bool {
	ev, ok := r.eventLocked(classID)
	if !ok || ev.DateKey == "" {
		return false
	}
	date, err := clock.ParseDate(ev.DateKey)
	if err != nil {
		return false
	}
	if ev.StartMinute != model.NoMinute {
		start := date.Add(time.Duration(ev.StartMinute) * time.Minute)
		return !start.After(r.now())
	}
	endOfDay := clock.AddDays(date, 1).Add(-time.Second)
	return !endOfDay.After(r.now())
}
