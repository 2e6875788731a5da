package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"chopbar/internal/apperr"
	"chopbar/internal/catalog"
	"chopbar/internal/models"
	"chopbar/internal/repository"
)

// Quantity bounds for a single submission.
const (
	minQuantity = 1
	maxQuantity = 50
)

// msgNotConfigured is the write-path message for a missing database.
const msgNotConfigured = "Database not configured. Set DATABASE_URL and create the required tables."

// emailPattern is a sanity check, not full RFC validation: something before
// the @, no whitespace, and at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Availability reports whether the backing database is configured. Satisfied
// by *database.DB.
type Availability interface {
	Configured() bool
}

// OrderService validates order submissions, resolves authoritative pricing
// and performs the transactional write.
type OrderService struct {
	menu   repository.MenuStore
	orders repository.OrderStore
	db     Availability
	log    *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(menu repository.MenuStore, orders repository.OrderStore, db Availability, log *slog.Logger) *OrderService {
	return &OrderService{
		menu:   menu,
		orders: orders,
		db:     db,
		log:    log,
	}
}

// Submit validates the request, resolves the unit price and writes the order.
// Validation short-circuits on the first failure; each failure carries its
// own user-facing message.
//
// Price resolution is database-first with a static fallback: the built-in
// catalog establishes a candidate, then an active database row for the same
// id supersedes it. An unconfigured database keeps the static candidate; any
// other lookup failure aborts the submission.
func (s *OrderService) Submit(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if !s.db.Configured() {
		return nil, apperr.New(apperr.Unavailable, msgNotConfigured)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidInput, "Name is required.")
	}

	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		return nil, apperr.New(apperr.InvalidInput, "Valid email is required.")
	}

	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		return nil, apperr.New(apperr.InvalidInput, "Item is required.")
	}

	q := req.Quantity
	if q != math.Trunc(q) || q < minQuantity || q > maxQuantity {
		return nil, apperr.New(apperr.InvalidInput, "Quantity must be between 1 and 50.")
	}
	quantity := int(q)

	item := catalog.Find(itemID)

	dbItem, err := s.menu.ActiveItemByID(ctx, itemID)
	switch {
	case err == nil && dbItem != nil:
		item = dbItem
	case err != nil && apperr.KindOf(err) != apperr.NotConfigured:
		return nil, err
	}

	if item == nil {
		return nil, apperr.New(apperr.InvalidInput, "Selected item not found.")
	}

	subtotalCents := item.PriceCents * int64(quantity)

	id, createdAt, err := s.orders.Insert(ctx, repository.NewOrder{
		CustomerName:   name,
		CustomerEmail:  email,
		ItemID:         item.ID,
		Quantity:       quantity,
		UnitPriceCents: item.PriceCents,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		"order_id", id,
		"item_id", item.ID,
		"quantity", quantity,
		"subtotal_cents", subtotalCents,
	)

	return &models.Order{
		ID:            id,
		CreatedAt:     createdAt,
		Customer:      models.Customer{Name: name, Email: email},
		Item:          models.OrderItem{ID: item.ID, Name: item.Name, PriceCents: item.PriceCents},
		Quantity:      quantity,
		SubtotalCents: subtotalCents,
		Subtotal:      FormatUSD(subtotalCents),
		UnitPrice:     FormatUSD(item.PriceCents),
	}, nil
}

// Recent returns up to 100 of the newest orders for display.
func (s *OrderService) Recent(ctx context.Context) ([]models.OrderSummary, error) {
	orders, err := s.orders.Recent(ctx, 100)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotConfigured {
			return nil, apperr.New(apperr.Unavailable, msgNotConfigured)
		}
		return nil, err
	}
	return orders, nil
}

// FormatUSD renders a cent amount as a dollar string, e.g. 450 -> "$4.50".
// Integer arithmetic only, so large subtotals never pick up float drift.
func FormatUSD(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
