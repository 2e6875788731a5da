package catalog

import "testing"

func TestItemsSorted(t *testing.T) {
	items := Items()
	if len(items) == 0 {
		t.Fatal("catalog is empty")
	}

	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.Category > cur.Category {
			t.Errorf("categories out of order at index %d: %q > %q", i, prev.Category, cur.Category)
		}
		if prev.Category == cur.Category && prev.Name > cur.Name {
			t.Errorf("names out of order within %q at index %d: %q > %q", cur.Category, i, prev.Name, cur.Name)
		}
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	first := Items()
	first[0].PriceCents = 999999

	second := Items()
	if second[0].PriceCents == 999999 {
		t.Error("mutating a returned slice changed the catalog")
	}
}

func TestFind(t *testing.T) {
	item := Find("jollof-chicken")
	if item == nil {
		t.Fatal("jollof-chicken not found")
	}
	if item.PriceCents != 450 {
		t.Errorf("expected price 450, got %d", item.PriceCents)
	}
	if item.Name != "Jollof and Chicken" {
		t.Errorf("unexpected name %q", item.Name)
	}

	if Find("no-such-item") != nil {
		t.Error("expected nil for unknown id")
	}
}
