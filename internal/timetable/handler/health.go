package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gymgrid/internal/timetable/repository"
	httputil "gymgrid/pkg/http"
	"gymgrid/pkg/logger"
)

type HealthHandler struct {
	classes repository.ClassSource
	log     *logger.Logger
}

func NewHealthHandler(classes repository.ClassSource, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		classes: classes,
		log:     log,
	}
}

// Health reports process liveness only.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready additionally requires the upstream gym API to answer.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !h.classes.Healthy(r.Context()) {
		h.log.Warn("Readiness check failed, gym API unreachable")
		httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
