package models

import "time"

// OrderRequest represents an incoming order submission.
// Quantity is decoded as a float so out-of-domain JSON numbers (2.5, 1e9)
// reach the range check instead of failing at the decoder.
type OrderRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	ItemID   string  `json:"itemId"`
	Quantity float64 `json:"quantity"`
}

// Customer identifies who placed an order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItem is the menu item snapshot captured on an order. PriceCents is the
// unit price at submission time; later catalog changes never alter it.
type OrderItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// Order is the receipt returned for a created order. Subtotal and UnitPrice
// are formatted dollar strings derived from the cent amounts.
type Order struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Customer      Customer  `json:"customer"`
	Item          OrderItem `json:"item"`
	Quantity      int       `json:"quantity"`
	SubtotalCents int64     `json:"subtotalCents"`
	Subtotal      string    `json:"subtotal"`
	UnitPrice     string    `json:"unitPrice"`
}

// OrderSummary is one row of the order history listing. ItemName is nil when
// the referenced menu item has no database row (left join miss).
type OrderSummary struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	ItemID         string    `json:"itemId"`
	ItemName       *string   `json:"itemName"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	SubtotalCents  int64     `json:"subtotalCents"`
}
