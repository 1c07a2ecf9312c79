package catalog_test

import (
	"strings"
	"testing"

	"sparehub/internal/catalog"
)

func TestNormalizeDropsInvalidRows(t *testing.T) {
	raw := []map[string]any{
		{"sku": "BRK-PAD-214", "name": "Ceramic Brake Pads Set", "stock": 12, "price": 48.99},
		{"sku": "", "name": "No SKU", "stock": 4},
		{"name": "Missing SKU entirely", "stock": 9},
		{"sku": "EXH-DPF-009", "name": "DPF", "stock": 0},
		{"sku": "SUS-SHOCK-01", "name": "Shock", "stock": -3},
	}

	got := catalog.Normalize(raw)
	if len(got) != 1 {
		t.Fatalf("want 1 product, got %d: %+v", len(got), got)
	}
	if got[0].SKU != "BRK-PAD-214" {
		t.Fatalf("wrong survivor: %+v", got[0])
	}
}

func TestNormalizeCoercion(t *testing.T) {
	raw := []map[string]any{{
		"sku":      "  IGN-SPK-4PK ",
		"rating":   "4.8",
		"reviews":  540.9,
		"price":    "22.00",
		"stock":    "24",
		"owner_id": -7,
	}}

	got := catalog.Normalize(raw)
	if len(got) != 1 {
		t.Fatalf("want 1 product, got %d", len(got))
	}
	p := got[0]
	if p.SKU != "IGN-SPK-4PK" {
		t.Fatalf("sku not trimmed: %q", p.SKU)
	}
	if p.Rating != 4.8 || p.Price != 22.00 {
		t.Fatalf("numeric strings not parsed: %+v", p)
	}
	if p.Reviews != 540 || p.Stock != 24 {
		t.Fatalf("integers not truncated: %+v", p)
	}
	if p.OwnerID != 0 {
		t.Fatalf("negative owner should clamp to 0, got %d", p.OwnerID)
	}
}

func TestNormalizeFallbackChains(t *testing.T) {
	raw := []map[string]any{
		{"vin": "ALT-100", "stock": 3, "seller_name": "Hub Motors"},
		{"sku": "ALT-200", "stock": 3, "brand": "Bosch"},
		{"sku": "ALT-300", "stock": 3},
	}

	got := catalog.Normalize(raw)
	if len(got) != 3 {
		t.Fatalf("want 3 products, got %d", len(got))
	}

	// sku resolved from the vin alias; brand cross-defaults from seller.
	if got[0].SKU != "ALT-100" || got[0].Brand != "Hub Motors" || got[0].SellerName != "Hub Motors" {
		t.Fatalf("alias resolution failed: %+v", got[0])
	}
	// seller cross-defaults from brand.
	if got[1].SellerName != "Bosch" {
		t.Fatalf("seller should default to brand: %+v", got[1])
	}
	// neither present: Unknown, and oem/name default to sku.
	p := got[2]
	if p.Brand != "Unknown" || p.SellerName != "Unknown" {
		t.Fatalf("want Unknown fallbacks: %+v", p)
	}
	if p.OEM != "ALT-300" || p.Name != "ALT-300" {
		t.Fatalf("want sku fallbacks: %+v", p)
	}
	if p.Condition != "New" || p.Category != "General" {
		t.Fatalf("want defaults: %+v", p)
	}
}

func TestNormalizeNeverNegative(t *testing.T) {
	raw := []map[string]any{{"sku": "X", "stock": 1, "rating": -4, "reviews": -10, "price": -5}}
	p := catalog.Normalize(raw)[0]
	if p.Rating != 0 || p.Reviews != 0 || p.Price != 0 {
		t.Fatalf("negatives must clamp to 0: %+v", p)
	}
}

func TestReadSeedOrderPreserved(t *testing.T) {
	seed := `[
	  {"sku":"A","stock":1},
	  {"sku":"SKIP","stock":0},
	  {"sku":"B","stock":2},
	  {"sku":"C","stock":3}
	]`
	got, err := catalog.ReadSeed(strings.NewReader(seed))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("want %d products, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].SKU != w {
			t.Fatalf("order broken at %d: %+v", i, got)
		}
	}
}
