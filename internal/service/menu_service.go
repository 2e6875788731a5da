package service

import (
	"context"
	"log/slog"

	"chopbar/internal/apperr"
	"chopbar/internal/catalog"
	"chopbar/internal/database"
	"chopbar/internal/models"
	"chopbar/internal/repository"
)

// Source tags tell the client where a menu listing came from.
const (
	SourceDB     = "db"
	SourceMemory = "memory"
)

// MenuService serves the menu with a database-first, built-in-fallback policy.
type MenuService struct {
	repo repository.MenuStore
	log  *slog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuStore, log *slog.Logger) *MenuService {
	return &MenuService{repo: repo, log: log}
}

// List returns the active menu and its source tag. A non-empty database
// result wins; an empty result, an unconfigured database, or a missing
// menu_items table all fall back to the built-in catalog. Any other database
// failure is surfaced.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, string, error) {
	items, err := s.repo.ActiveItems(ctx)
	switch {
	case err == nil && len(items) > 0:
		return items, SourceDB, nil
	case err != nil && !canFallBack(err):
		return nil, "", err
	case err != nil:
		s.log.Debug("menu read fell back to built-in catalog", "error", err)
	}
	return catalog.Items(), SourceMemory, nil
}

// canFallBack reports whether a database failure is one of the two conditions
// the read paths silently absorb by serving the built-in catalog: no database
// configured, or the expected table not created yet. Every fallback call site
// goes through this one predicate so the classification stays consistent.
func canFallBack(err error) bool {
	return apperr.KindOf(err) == apperr.NotConfigured || database.IsUndefinedTable(err)
}
