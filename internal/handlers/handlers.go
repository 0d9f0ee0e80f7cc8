package handlers

import (
	"Vitrine/internal/config"
	"Vitrine/internal/middleware"
	"Vitrine/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	visitService *service.VisitService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	// API открыт для любых origin, как и исходный фронт
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)

	// Handlers
	visitHandler := NewVisitHandler(visitService, logger)
	itemHandler := NewItemHandler(itemService, logger, cfg)

	// Счётчик посещений
	r.Get("/visit", visitHandler.Increment)
	r.Get("/visits", visitHandler.Visits)

	// CRUD items
	r.Post("/items", itemHandler.Create)
	r.Get("/items", itemHandler.List)
	r.Get("/items/{id}", itemHandler.Get)
	r.Put("/items/{id}", itemHandler.Update)
	r.Delete("/items/{id}", itemHandler.Delete)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с заданным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError мапит доменные ошибки сервиса на HTTP статусы:
// 400 — валидация, 404 — отсутствие записи, 500 — всё остальное.
func writeError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]any{"error": err.Error()})
}
