package services_test

import (
	"errors"
	"testing"

	"sparehub/internal/catalog"
	"sparehub/internal/domain"
	"sparehub/internal/services"
)

func TestWishToggle(t *testing.T) {
	svc := services.NewShortlistService(memstore(t), testCatalog())

	added, err := svc.ToggleWish("p1", "BRK-PAD-214")
	if err != nil || !added {
		t.Fatalf("first toggle should add: %v %v", added, err)
	}
	added, err = svc.ToggleWish("p1", "BRK-PAD-214")
	if err != nil || added {
		t.Fatalf("second toggle should remove: %v %v", added, err)
	}
	if got := svc.Wishlist("p1"); len(got) != 0 {
		t.Fatalf("wishlist should be empty: %v", got)
	}
}

func TestCompareCap(t *testing.T) {
	// catalog with 4 distinct products
	cat := catalog.New([]domain.Product{
		{SKU: "A", Condition: "New", Stock: 1},
		{SKU: "B", Condition: "New", Stock: 1},
		{SKU: "C", Condition: "New", Stock: 1},
		{SKU: "D", Condition: "New", Stock: 1},
	})
	svc := services.NewShortlistService(memstore(t), cat)

	for _, sku := range []string{"A", "B", "C"} {
		if _, err := svc.ToggleCompare("p1", sku); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.ToggleCompare("p1", "D"); !errors.Is(err, domain.ErrCompareFull) {
		t.Fatalf("want ErrCompareFull, got %v", err)
	}
	if got := svc.CompareList("p1"); len(got) != 3 {
		t.Fatalf("set must stay at 3: %v", got)
	}

	// removing a member while full still works.
	if _, err := svc.ToggleCompare("p1", "B"); err != nil {
		t.Fatal(err)
	}
	if got := svc.CompareList("p1"); len(got) != 2 {
		t.Fatalf("want 2 after removal: %v", got)
	}
}

func TestCompareClear(t *testing.T) {
	svc := services.NewShortlistService(memstore(t), testCatalog())
	_, _ = svc.ToggleCompare("p1", "BRK-PAD-214")

	if err := svc.ClearCompare("p1"); err != nil {
		t.Fatal(err)
	}
	if got := svc.CompareList("p1"); len(got) != 0 {
		t.Fatalf("clear failed: %v", got)
	}
}

func TestCompareTableAlwaysThreeColumns(t *testing.T) {
	svc := services.NewShortlistService(memstore(t), testCatalog())
	_, _ = svc.ToggleCompare("p1", "BRK-PAD-214")

	cols := svc.CompareTable("p1")
	if len(cols) != 3 {
		t.Fatalf("table must have 3 columns, got %d", len(cols))
	}
	if !cols[0].Filled || cols[0].SKU != "BRK-PAD-214" {
		t.Fatalf("first column should be filled: %+v", cols[0])
	}
	if cols[0].Rating != "4.6 (312)" || cols[0].Price != "$48.99" {
		t.Fatalf("display formatting wrong: %+v", cols[0])
	}
	for _, c := range cols[1:] {
		if c.Filled || c.SKU != "—" || c.Price != "—" {
			t.Fatalf("empty column should carry placeholders: %+v", c)
		}
	}
}

func TestShortlistUnknownSKU(t *testing.T) {
	svc := services.NewShortlistService(memstore(t), testCatalog())
	if _, err := svc.ToggleWish("p1", "NOPE"); !errors.Is(err, domain.ErrUnknownProduct) {
		t.Fatalf("want ErrUnknownProduct, got %v", err)
	}
	if _, err := svc.ToggleCompare("p1", "NOPE"); !errors.Is(err, domain.ErrUnknownProduct) {
		t.Fatalf("want ErrUnknownProduct, got %v", err)
	}
}
