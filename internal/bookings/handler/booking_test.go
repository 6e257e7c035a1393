package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	bookingservice "gymgrid/internal/bookings/service"
	apperrors "gymgrid/pkg/errors"
	"gymgrid/pkg/logger"
	"gymgrid/pkg/model"
)

type mockReconciler struct {
	refresh  func(ctx context.Context, actor *model.Actor) error
	book     func(ctx context.Context, actor *model.Actor, req *model.BookRequest) (*model.BookResult, error)
	cancel   func(ctx context.Context, actor *model.Actor, req *model.CancelRequest) error
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
	return m.cancel(ctx, actor, req)
}

func (m *mockReconciler) Snapshot() bookingservice.Snapshot {
	if m.snapshot == nil {
		return bookingservice.Snapshot{}
	}
	return m.snapshot()
}

func newTestRouter(reconciler bookingservice.BookingReconciler) *httprouter.Router {
	log := logger.New(logger.Config{Level: "error", Format: logger.TEXT, Service: "test"})
	router := httprouter.New()
	NewBookingHandler(reconciler, log).RegisterRoutes(router)
	return router
}

func TestList(t *testing.T) {
	router := newTestRouter(&mockReconciler{
		snapshot: func() bookingservice.Snapshot {
			return bookingservice.Snapshot{
				Entries: []model.BookingEntry{{BookingID: 1001, ClassID: 5, ClassName: "Yoga"}},
			}
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?actor_id=7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data []model.BookingEntry `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unreadable response: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].BookingID != 1001 {
		t.Errorf("unexpected entries: %+v", body.Data)
	}
}

func TestList_MissingActorID(t *testing.T) {
	router := newTestRouter(&mockReconciler{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreate(t *testing.T) {
	router := newTestRouter(&mockReconciler{
		book: func(ctx context.Context, actor *model.Actor, req *model.BookRequest) (*model.BookResult, error) {
			if actor.ID != 7 || actor.Role != model.RoleClient {
				t.Errorf("unexpected actor: %+v", actor)
			}
			if req.ClassID != 5 {
				t.Errorf("unexpected class id: %d", req.ClassID)
			}
			return &model.BookResult{Status: "confirmed", BookingID: 1001}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings",
		strings.NewReader(`{"actor_id": 7, "class_id": 5}`)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreate_RoleComesFromBody(t *testing.T) {
	router := newTestRouter(&mockReconciler{
		book: func(ctx context.Context, actor *model.Actor, req *model.BookRequest) (*model.BookResult, error) {
			if actor.ID != 3 || actor.Role != model.RoleTrainer {
				t.Errorf("unexpected actor: %+v", actor)
			}
			return nil, apperrors.Forbidden("Only clients can book classes")
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings",
		strings.NewReader(`{"actor_id": 3, "class_id": 5, "role": "trainer"}`)))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreate_ConflictPropagates(t *testing.T) {
	router := newTestRouter(&mockReconciler{
		book: func(ctx context.Context, actor *model.Actor, req *model.BookRequest) (*model.BookResult, error) {
			return nil, apperrors.Conflict("You are already booked for this class")
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings",
		strings.NewReader(`{"actor_id": 7, "class_id": 5}`)))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "You are already booked for this class") {
		t.Errorf("expected the conflict message, got %s", rec.Body.String())
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	router := newTestRouter(&mockReconciler{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings",
		strings.NewReader(`{not json`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCancel(t *testing.T) {
	router := newTestRouter(&mockReconciler{
		cancel: func(ctx context.Context, actor *model.Actor, req *model.CancelRequest) error {
			if actor.ID != 7 || actor.Role != model.RoleClient {
				t.Errorf("unexpected actor: %+v", actor)
			}
			if req.ActorID != 7 || req.ClassID != 5 {
				t.Errorf("unexpected request: %+v", req)
			}
			return nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/5?actor_id=7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Booking cancelled.") {
		t.Errorf("expected the confirmation message, got %s", rec.Body.String())
	}
}

func TestCancel_MissingActorID(t *testing.T) {
	router := newTestRouter(&mockReconciler{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/5", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCancel_ConflictPropagates(t *testing.T) {
	router := newTestRouter(&mockReconciler{
		cancel: func(ctx context.Context, actor *model.Actor, req *model.CancelRequest) error {
			return apperrors.Conflict("Past bookings cannot be cancelled")
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/5?actor_id=7", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Past bookings cannot be cancelled") {
		t.Errorf("expected the conflict message, got %s", rec.Body.String())
	}
}
