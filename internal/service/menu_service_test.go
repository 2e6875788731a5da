package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"chopbar/internal/apperr"
	"chopbar/internal/database"
	"chopbar/internal/models"
)

func TestMenuList_DatabaseRows(t *testing.T) {
	dbItems := []models.MenuItem{
		{ID: "waakye", Name: "Waakye", PriceCents: 400, Category: "main"},
	}
	svc := NewMenuService(&fakeMenuStore{items: dbItems}, testLogger())

	items, source, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceDB {
		t.Errorf("expected source %q, got %q", SourceDB, source)
	}
	if len(items) != 1 || items[0].ID != "waakye" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestMenuList_FallsBackToCatalog(t *testing.T) {
	undefinedTable := apperr.Wrap(apperr.Internal, "relation does not exist", &pgconn.PgError{Code: "42P01"})

	tests := []struct {
		name  string
		store *fakeMenuStore
	}{
		{name: "empty result", store: &fakeMenuStore{}},
		{name: "not configured", store: &fakeMenuStore{listErr: database.ErrNotConfigured}},
		{name: "missing table", store: &fakeMenuStore{listErr: undefinedTable}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMenuService(tt.store, testLogger())

			items, source, err := svc.List(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if source != SourceMemory {
				t.Errorf("expected source %q, got %q", SourceMemory, source)
			}
			if len(items) == 0 {
				t.Fatal("expected built-in catalog items")
			}
			for i := 1; i < len(items); i++ {
				prev, cur := items[i-1], items[i]
				if prev.Category > cur.Category ||
					(prev.Category == cur.Category && prev.Name > cur.Name) {
					t.Errorf("items not sorted by category then name at index %d", i)
				}
			}
		})
	}
}

func TestMenuList_OtherErrorsSurface(t *testing.T) {
	listErr := apperr.Wrap(apperr.Internal, "connection reset", errors.New("connection reset"))
	svc := NewMenuService(&fakeMenuStore{listErr: listErr}, testLogger())

	_, _, err := svc.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if apperr.KindOf(err) != apperr.Internal {
		t.Errorf("expected Internal, got kind %v", apperr.KindOf(err))
	}
}
