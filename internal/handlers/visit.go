package handlers

import (
	"net/http"

	"Vitrine/internal/service"

	"go.uber.org/zap"
)

// VisitHandler обрабатывает счётчик посещений.
type VisitHandler struct {
	VisitService *service.VisitService
	Logger       *zap.SugaredLogger
}

// NewVisitHandler создаёт хендлер счётчика
func NewVisitHandler(visitService *service.VisitService, logger *zap.SugaredLogger) *VisitHandler {
	return &VisitHandler{VisitService: visitService, Logger: logger}
}

// Increment — GET /visit: +1 к счётчику, в ответе новое значение.
func (h *VisitHandler) Increment(w http.ResponseWriter, r *http.Request) {
	n, err := h.VisitService.Increment(r.Context())
	if err != nil {
		h.Logger.Errorw("visit: increment failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"visits": n})
}

// Visits — GET /visits: текущее значение без изменения.
func (h *VisitHandler) Visits(w http.ResponseWriter, r *http.Request) {
	n, err := h.VisitService.Visits(r.Context())
	if err != nil {
		h.Logger.Errorw("visit: read failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"visits": n})
}
