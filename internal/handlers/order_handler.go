package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"chopbar/internal/apperr"
	"chopbar/internal/metrics"
	"chopbar/internal/models"
	"chopbar/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// OrderCreatedResponse is the 201 body for a successful submission.
type OrderCreatedResponse struct {
	Message string        `json:"message"`
	Order   *models.Order `json:"order"`
}

// OrdersResponse is the order history listing body.
type OrdersResponse struct {
	Orders []models.OrderSummary `json:"orders"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode order request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	order, err := h.service.Submit(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("failed to create order", "error", err)
		} else {
			h.logger.Warn("order rejected", "error", err)
		}
		writeError(w, status, apperr.UserMessage(err), h.logger)
		return
	}

	metrics.OrdersSubmitted.Inc()
	writeJSON(w, http.StatusCreated, OrderCreatedResponse{
		Message: "Order received!",
		Order:   order,
	}, h.logger)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.Recent(r.Context())
	if err != nil {
		h.logger.Error("failed to list orders", "error", err)
		writeError(w, statusFor(err), apperr.UserMessage(err), h.logger)
		return
	}

	if orders == nil {
		orders = []models.OrderSummary{}
	}
	writeJSON(w, http.StatusOK, OrdersResponse{Orders: orders}, h.logger)
}
