package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"gymgrid/internal/bookings/service"
	apperrors "gymgrid/pkg/errors"
	httputil "gymgrid/pkg/http"
	"gymgrid/pkg/logger"
	"gymgrid/pkg/model"
)

type BookingHandler struct {
	reconciler service.BookingReconciler
	log        *logger.Logger
}

func NewBookingHandler(reconciler service.BookingReconciler, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		reconciler: reconciler,
		log:        log,
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actorID := strings.TrimSpace(r.URL.Query().Get("actor_id"))
	id, err := strconv.Atoi(actorID)
	if err != nil || id < 1 {
		httputil.WriteError(w, apperrors.InvalidInput("'actor_id' query parameter is required and must be a positive integer"))
		return
	}

	actor := &model.Actor{ID: id, Role: model.RoleClient}
	if err := h.reconciler.Refresh(r.Context(), actor); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, h.reconciler.Snapshot().Entries)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	result, err := h.reconciler.Book(r.Context(), actorFromRequest(req.ActorID, req.Role), &req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, result)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	classID, err := strconv.Atoi(ps.ByName("class_id"))
	if err != nil || classID < 1 {
		httputil.WriteError(w, apperrors.InvalidInput("'class_id' must be a positive integer"))
		return
	}

	actorID, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("actor_id")))
	if err != nil || actorID < 1 {
		httputil.WriteError(w, apperrors.InvalidInput("'actor_id' query parameter is required and must be a positive integer"))
		return
	}

	actor := actorFromRequest(actorID, r.URL.Query().Get("role"))
	req := &model.CancelRequest{ActorID: actorID, ClassID: classID}
	if err := h.reconciler.Cancel(r.Context(), actor, req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, map[string]string{"message": "Booking cancelled."})
}

// actorFromRequest assembles the acting identity. A missing role means a
// regular client; role checks happen in the reconciler.
func actorFromRequest(id int, role string) *model.Actor {
	role = strings.TrimSpace(strings.ToLower(role))
	if role == "" {
		role = model.RoleClient
	}
	return &model.Actor{ID: id, Role: role}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/bookings", h.List)
	router.POST("/api/v1/bookings", h.Create)
	router.DELETE("/api/v1/bookings/:class_id", h.Cancel)
}
