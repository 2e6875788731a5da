package handlers

import (
	"log/slog"
	"net/http"

	"chopbar/internal/apperr"
	"chopbar/internal/models"
	"chopbar/internal/service"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// MenuResponse represents the menu listing response.
type MenuResponse struct {
	Items  []models.MenuItem `json:"items"`
	Source string            `json:"source"`
}

// ListMenu handles GET /api/menu
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, source, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list menu", "error", err)
		writeError(w, statusFor(err), apperr.UserMessage(err), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MenuResponse{Items: items, Source: source}, h.logger)
}
