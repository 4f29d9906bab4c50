package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dsjohal14/dbhealth/internal/scope/db"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	db            db.Accessor
	containerName string
	logger        zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(accessor db.Accessor, containerName string, logger zerolog.Logger) *Handler {
	return &Handler{
		db:            accessor,
		containerName: containerName,
		logger:        logger,
	}
}

// Routes mounts the API endpoints on a chi router
func (h *Handler) Routes() *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Routes
	r.Get("/health", h.HandleHealth)
	r.Get("/number_of_tables", h.HandleNumberOfTables)

	return r
}

// Helper functions used across all handlers

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeInternalError logs err and writes the generic 500 body
func (h *Handler) writeInternalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	h.logger.Error().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg(msg)
	writeError(w, http.StatusInternalServerError, "internal server error", "internal_error")
}
