package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"gymgrid/internal/timetable/service"
	apperrors "gymgrid/pkg/errors"
	httputil "gymgrid/pkg/http"
	"gymgrid/pkg/logger"
	"gymgrid/pkg/model"
)

type TimetableHandler struct {
	service service.TimetableService
	log     *logger.Logger
}

func NewTimetableHandler(service service.TimetableService, log *logger.Logger) *TimetableHandler {
	return &TimetableHandler{
		service: service,
		log:     log,
	}
}

func (h *TimetableHandler) Week(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	actor, err := actorFromQuery(query.Get("actor_id"), query.Get("role"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	view, err := h.service.WeekView(r.Context(), actor, strings.TrimSpace(query.Get("start")))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, view)
}

func (h *TimetableHandler) Classes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	classes, err := h.service.ListClasses(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, classes)
}

func (h *TimetableHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/timetable/week", h.Week)
	router.GET("/api/v1/timetable/classes", h.Classes)
}

// actorFromQuery builds the session identity from query parameters. An absent
// actor_id yields a nil actor: the grid renders read-only.
func actorFromQuery(actorID, role string) (*model.Actor, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, nil
	}

	id, err := strconv.Atoi(actorID)
	if err != nil || id < 1 {
		return nil, apperrors.InvalidInput("actor_id must be a positive integer")
	}

	role = strings.TrimSpace(strings.ToLower(role))
	if role == "" {
		role = model.RoleClient
	}
	switch role {
	case model.RoleClient, model.RoleTrainer, model.RoleManager:
	default:
		return nil, apperrors.InvalidInput("role must be one of: client, trainer, manager")
	}

	return &model.Actor{ID: id, Role: role}, nil
}
