package handlers

import (
	"log/slog"
	"net/http"

	"chopbar/internal/database"
)

// HealthHandler provides the health check endpoint.
type HealthHandler struct {
	db     *database.DB
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// HealthResponse represents the health check response. OK covers the process
// itself; DB carries the database probe, failures included.
type HealthResponse struct {
	OK bool            `json:"ok"`
	DB database.Health `json:"db"`
}

// ServeHTTP handles GET /api/health. It always answers 200: database trouble
// is reported inside the body, never as a failed request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		OK: true,
		DB: h.db.Health(r.Context()),
	}
	writeJSON(w, http.StatusOK, response, h.logger)
}
