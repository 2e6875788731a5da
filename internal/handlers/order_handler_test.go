package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chopbar/internal/apperr"
	"chopbar/internal/database"
	"chopbar/internal/models"
	"chopbar/internal/repository"
	"chopbar/internal/service"
)

type fakeMenuStore struct {
	items   []models.MenuItem
	item    *models.MenuItem
	listErr error
	itemErr error
}

func (f *fakeMenuStore) ActiveItems(ctx context.Context) ([]models.MenuItem, error) {
	return f.items, f.listErr
}

func (f *fakeMenuStore) ActiveItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	return f.item, f.itemErr
}

type fakeOrderStore struct {
	inserted  []repository.NewOrder
	insertErr error
	recent    []models.OrderSummary
	recentErr error
}

func (f *fakeOrderStore) Insert(ctx context.Context, o repository.NewOrder) (string, time.Time, error) {
	if f.insertErr != nil {
		return "", time.Time{}, f.insertErr
	}
	f.inserted = append(f.inserted, o)
	return fmt.Sprintf("order-%d", len(f.inserted)), time.Now().UTC(), nil
}

func (f *fakeOrderStore) Recent(ctx context.Context, limit int) ([]models.OrderSummary, error) {
	return f.recent, f.recentErr
}

type availability bool

func (a availability) Configured() bool { return bool(a) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderHandler(menu *fakeMenuStore, orders *fakeOrderStore, configured bool) *OrderHandler {
	log := testLogger()
	svc := service.NewOrderService(menu, orders, availability(configured), log)
	return NewOrderHandler(svc, log)
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		configured     bool
		requestBody    interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(*testing.T, OrderCreatedResponse)
	}{
		{
			name:       "successful order",
			configured: true,
			requestBody: models.OrderRequest{
				Name:     "Ama Boat",
				Email:    "ama@example.com",
				ItemID:   "jollof-chicken",
				Quantity: 2,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp OrderCreatedResponse) {
				if resp.Message != "Order received!" {
					t.Errorf("unexpected message %q", resp.Message)
				}
				if resp.Order == nil {
					t.Fatal("order missing from response")
				}
				if resp.Order.ID == "" {
					t.Error("order ID is empty")
				}
				if resp.Order.UnitPrice != "$4.50" {
					t.Errorf("expected unit price $4.50, got %s", resp.Order.UnitPrice)
				}
				if resp.Order.Subtotal != "$9.00" {
					t.Errorf("expected subtotal $9.00, got %s", resp.Order.Subtotal)
				}
				if resp.Order.SubtotalCents != 900 {
					t.Errorf("expected 900 subtotal cents, got %d", resp.Order.SubtotalCents)
				}
			},
		},
		{
			name:           "invalid JSON",
			configured:     true,
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:       "missing name",
			configured: true,
			requestBody: models.OrderRequest{
				Email:    "ama@example.com",
				ItemID:   "jollof-chicken",
				Quantity: 1,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Name is required.",
		},
		{
			name:       "bad email",
			configured: true,
			requestBody: models.OrderRequest{
				Name:     "Ama",
				Email:    "ama.example.com",
				ItemID:   "jollof-chicken",
				Quantity: 1,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Valid email is required.",
		},
		{
			name:       "quantity out of range",
			configured: true,
			requestBody: models.OrderRequest{
				Name:     "Ama",
				Email:    "ama@example.com",
				ItemID:   "jollof-chicken",
				Quantity: 51,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Quantity must be between 1 and 50.",
		},
		{
			name:       "unknown item",
			configured: true,
			requestBody: models.OrderRequest{
				Name:     "Ama",
				Email:    "ama@example.com",
				ItemID:   "fufu-lightsoup",
				Quantity: 1,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Selected item not found.",
		},
		{
			name:       "database not configured",
			configured: false,
			requestBody: models.OrderRequest{
				Name:     "Ama",
				Email:    "ama@example.com",
				ItemID:   "jollof-chicken",
				Quantity: 1,
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &fakeOrderStore{}
			handler := newOrderHandler(&fakeMenuStore{}, orders, tt.configured)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.CreateOrder(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}

			if tt.expectedStatus != http.StatusCreated {
				if len(orders.inserted) != 0 {
					t.Errorf("failed request must not insert, got %d rows", len(orders.inserted))
				}
				if tt.expectedError != "" {
					var errResp map[string]string
					if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
						t.Fatalf("error body not JSON: %v", err)
					}
					if errResp["error"] != tt.expectedError {
						t.Errorf("expected error %q, got %q", tt.expectedError, errResp["error"])
					}
				}
				return
			}

			var resp OrderCreatedResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response body not JSON: %v", err)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	itemName := "Jollof and Chicken"
	rows := []models.OrderSummary{
		{ID: "a", ItemID: "jollof-chicken", ItemName: &itemName, Quantity: 2, UnitPriceCents: 450, SubtotalCents: 900},
		{ID: "b", ItemID: "cappuccino", Quantity: 1, UnitPriceCents: 350, SubtotalCents: 350},
	}

	tests := []struct {
		name           string
		configured     bool
		store          *fakeOrderStore
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "returns rows",
			configured:     true,
			store:          &fakeOrderStore{recent: rows},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "empty history",
			configured:     true,
			store:          &fakeOrderStore{},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "not configured",
			configured:     false,
			store:          &fakeOrderStore{recentErr: database.ErrNotConfigured},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "schema mismatch",
			configured:     true,
			store:          &fakeOrderStore{recentErr: apperr.New(apperr.SchemaMismatch, "schema mismatch")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newOrderHandler(&fakeMenuStore{}, tt.store, tt.configured)

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			rec := httptest.NewRecorder()

			handler.ListOrders(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp OrdersResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response body not JSON: %v", err)
			}
			if resp.Orders == nil {
				t.Fatal("orders must be an array, not null")
			}
			if len(resp.Orders) != tt.expectedCount {
				t.Errorf("expected %d orders, got %d", tt.expectedCount, len(resp.Orders))
			}
		})
	}
}
