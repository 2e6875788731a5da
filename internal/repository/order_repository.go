package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chopbar/internal/database"
	"chopbar/internal/models"
)

// Operator-facing hints for the two ways the orders table can be wrong.
const (
	insertMismatchMsg = `Database schema mismatch: your "orders" table is missing required columns (menu_item_id, quantity, unit_price_cents). Add them and try again.`
	listMismatchMsg   = `Database schema mismatch: column "menu_item_id" (and related columns) is missing from "orders". Update your orders table to include menu_item_id, quantity, and unit_price_cents.`
)

// NewOrder is the row an order submission writes. UnitPriceCents is the price
// resolved at submission time and is never recomputed afterwards.
type NewOrder struct {
	CustomerName   string
	CustomerEmail  string
	ItemID         string
	Quantity       int
	UnitPriceCents int64
}

// OrderStore defines the interface for order persistence.
type OrderStore interface {
	// Insert writes one order row inside its own transaction and returns the
	// assigned id and creation timestamp.
	Insert(ctx context.Context, o NewOrder) (id string, createdAt time.Time, err error)

	// Recent returns up to limit orders, newest first, with the menu item
	// name joined in where a row exists.
	Recent(ctx context.Context, limit int) ([]models.OrderSummary, error)
}

// OrderRepository implements OrderStore over Postgres.
type OrderRepository struct {
	db *database.DB
}

// NewOrderRepository creates a Postgres-backed order repository.
func NewOrderRepository(db *database.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const insertOrderQuery = `
insert into orders (id, customer_name, customer_email, menu_item_id, quantity, unit_price_cents)
values ($1, $2, $3, $4, $5, $6)
returning created_at`

// Insert writes the order row. The id is assigned here, at insert time, so a
// failed transaction leaves no identifier behind.
func (r *OrderRepository) Insert(ctx context.Context, o NewOrder) (string, time.Time, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", time.Time{}, classify(err, insertMismatchMsg)
	}
	defer tx.Rollback(ctx)

	id := uuid.New().String()
	var createdAt time.Time
	err = tx.QueryRow(ctx, insertOrderQuery,
		id, o.CustomerName, o.CustomerEmail, o.ItemID, o.Quantity, o.UnitPriceCents,
	).Scan(&createdAt)
	if err != nil {
		return "", time.Time{}, classify(err, insertMismatchMsg)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", time.Time{}, classify(err, insertMismatchMsg)
	}
	return id, createdAt, nil
}

const recentOrdersQuery = `
select
    o.id,
    o.created_at,
    o.customer_name,
    o.customer_email,
    o.menu_item_id,
    mi.name,
    o.quantity,
    o.unit_price_cents,
    o.quantity * o.unit_price_cents
from orders o
left join menu_items mi on mi.id = o.menu_item_id
order by o.created_at desc
limit $1`

// Recent lists the newest orders. The join is best-effort: an order may
// reference a built-in catalog id with no menu_items row.
func (r *OrderRepository) Recent(ctx context.Context, limit int) ([]models.OrderSummary, error) {
	rows, err := r.db.Query(ctx, recentOrdersQuery, limit)
	if err != nil {
		return nil, classify(err, listMismatchMsg)
	}
	defer rows.Close()

	var orders []models.OrderSummary
	for rows.Next() {
		var o models.OrderSummary
		if err := rows.Scan(
			&o.ID, &o.CreatedAt, &o.CustomerName, &o.CustomerEmail,
			&o.ItemID, &o.ItemName, &o.Quantity, &o.UnitPriceCents, &o.SubtotalCents,
		); err != nil {
			return nil, classify(err, listMismatchMsg)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, listMismatchMsg)
	}
	return orders, nil
}
