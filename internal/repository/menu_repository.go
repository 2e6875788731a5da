package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"chopbar/internal/apperr"
	"chopbar/internal/database"
	"chopbar/internal/models"
)

// MenuStore defines the interface for menu item data access.
type MenuStore interface {
	// ActiveItems returns every active menu item ordered by category then name.
	ActiveItems(ctx context.Context) ([]models.MenuItem, error)

	// ActiveItemByID returns the active item with the given id, or nil when
	// there is no such row.
	ActiveItemByID(ctx context.Context, id string) (*models.MenuItem, error)
}

// MenuRepository implements MenuStore over Postgres.
type MenuRepository struct {
	db *database.DB
}

// NewMenuRepository creates a Postgres-backed menu repository.
func NewMenuRepository(db *database.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

const activeItemsQuery = `
select id, name, description, image_url, category, price_cents
from menu_items
where is_active = true
order by category, name`

// ActiveItems returns all active menu items.
func (r *MenuRepository) ActiveItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, activeItemsQuery)
	if err != nil {
		return nil, classify(err, "")
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL, &it.Category, &it.PriceCents); err != nil {
			return nil, classify(err, "")
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "")
	}
	return items, nil
}

const activeItemByIDQuery = `
select id, name, price_cents
from menu_items
where id = $1 and is_active = true
limit 1`

// ActiveItemByID looks up a single active item. A missing row is not an
// error: the caller has a static candidate to fall back on.
func (r *MenuRepository) ActiveItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	row, err := r.db.QueryRow(ctx, activeItemByIDQuery, id)
	if err != nil {
		return nil, classify(err, "")
	}

	var it models.MenuItem
	if err := row.Scan(&it.ID, &it.Name, &it.PriceCents); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, "")
	}
	return &it, nil
}

// classify maps a database failure onto the error taxonomy. The original
// error stays in the chain so SQLSTATE checks keep working through the wrap.
// An empty mismatchMsg means undefined-column is not special for this call
// site and falls through to Internal.
func classify(err error, mismatchMsg string) error {
	var tagged *apperr.Error
	if errors.As(err, &tagged) {
		return err
	}
	if mismatchMsg != "" && database.IsUndefinedColumn(err) {
		return apperr.Wrap(apperr.SchemaMismatch, mismatchMsg, err)
	}
	return apperr.Wrap(apperr.Internal, err.Error(), err)
}
