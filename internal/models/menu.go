package models

// MenuItem represents a single orderable item.
// A menu item comes either from the menu_items table or from the built-in
// catalog; the two sources are never merged.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}
