// Package catalog holds the built-in menu served whenever the database has
// nothing to offer: no DATABASE_URL, no menu_items table, or an empty one.
package catalog

import (
	"sort"

	"chopbar/internal/models"
)

// items is fixed at process start; there are no mutation operations.
var items = []models.MenuItem{
	{
		ID:          "cappuccino",
		Name:        "Cappuccino",
		PriceCents:  350,
		Description: "Rich espresso with steamed milk and foam.",
		ImageURL:    "/images/coffee.jpg",
		Category:    "breakfast",
	},
	{
		ID:          "croissant",
		Name:        "Butter Croissant",
		PriceCents:  200,
		Description: "Flaky and buttery, baked fresh daily.",
		ImageURL:    "/images/croissant.jpg",
		Category:    "breakfast",
	},
	{
		ID:          "smoothie",
		Name:        "Strawberry Smoothie",
		PriceCents:  400,
		Description: "Refreshing blend of strawberries and yogurt.",
		ImageURL:    "/images/smoothie.jpg",
		Category:    "breakfast",
	},
	{
		ID:          "chocolate-muffin",
		Name:        "Chocolate Muffin",
		PriceCents:  250,
		Description: "Soft, rich muffin loaded with chocolate chips.",
		ImageURL:    "/images/pastry.jpg",
		Category:    "breakfast",
	},
	{
		ID:          "french-toast",
		Name:        "French Toast",
		PriceCents:  200,
		Description: "Pan fried toast topped with strawberries, blueberries and powdered sugar.",
		ImageURL:    "/images/toast.jpg",
		Category:    "breakfast",
	},
	{
		ID:          "lemon-cake",
		Name:        "Lemon cake",
		PriceCents:  200,
		Description: "Moist, tart lemon cake.",
		ImageURL:    "/images/cake.jpg",
		Category:    "breakfast",
	},
	{
		ID:          "banku-tilapia",
		Name:        "Banku and Tilapia",
		PriceCents:  500,
		Description: "Soft banku and grilled tilapia served with spicy green and black sauce.",
		ImageURL:    "/images/banku.jpg",
		Category:    "main",
	},
	{
		ID:          "jollof-chicken",
		Name:        "Jollof and Chicken",
		PriceCents:  450,
		Description: "Ghanaian jollof rice with grilled chicken.",
		ImageURL:    "/images/jollof.jpg",
		Category:    "main",
	},
	{
		ID:          "lasanga",
		Name:        "Lasanga",
		PriceCents:  500,
		Description: "Tasty, cheesy goodness!",
		ImageURL:    "/images/lasanga.jpg",
		Category:    "main",
	},
	{
		ID:          "spaghetti-beef",
		Name:        "Spaghetti with beef tomato sauce",
		PriceCents:  600,
		Description: "Italian spaghetti with hearty sauce, packed with ground beef, tomatoes, garlic, and Italian herbs.",
		ImageURL:    "/images/pasta.jpg",
		Category:    "main",
	},
	{
		ID:          "mac-n-cheese",
		Name:        "Mac 'n' Cheese",
		PriceCents:  500,
		Description: "Tini's 3 cheese thanksgiving mac and cheese.",
		ImageURL:    "/images/man_n_cheese.jpg",
		Category:    "main",
	},
}

// Items returns a copy of the static menu sorted by category then name,
// matching the ordering the database path uses.
func Items() []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Find returns the static item with the given id, or nil if there is none.
func Find(id string) *models.MenuItem {
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item
		}
	}
	return nil
}
