package store_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"sparehub/internal/domain"
	"sparehub/internal/store"
)

func memstore(t *testing.T) *store.Store {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s, err := store.New(db)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := memstore(t)

	in := []domain.CartLine{{SKU: "BRK-PAD-214", Qty: 2}, {SKU: "IGN-SPK-4PK", Qty: 1}}
	if err := s.Set("p1", store.KeyCart, in); err != nil {
		t.Fatal(err)
	}

	var out []domain.CartLine
	if !s.Get("p1", store.KeyCart, &out) {
		t.Fatal("expected stored cart")
	}
	if len(out) != 2 || out[0].SKU != "BRK-PAD-214" || out[0].Qty != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestStoreMissingKeyKeepsDefault(t *testing.T) {
	s := memstore(t)

	wish := []string{"default"}
	if s.Get("p1", store.KeyWishlist, &wish) {
		t.Fatal("never-set key should report false")
	}
	if len(wish) != 1 || wish[0] != "default" {
		t.Fatalf("default clobbered: %+v", wish)
	}
}

func TestStoreOverwrite(t *testing.T) {
	s := memstore(t)

	if err := s.Set("p1", store.KeyCompare, []string{"A"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("p1", store.KeyCompare, []string{"B", "C"}); err != nil {
		t.Fatal(err)
	}

	var got []string
	if !s.Get("p1", store.KeyCompare, &got) {
		t.Fatal("expected stored value")
	}
	if len(got) != 2 || got[0] != "B" {
		t.Fatalf("want last write, got %+v", got)
	}
}

func TestStoreCorruptValueFallsBack(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s, err := store.New(db)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO kv(profile_id,k,v) VALUES('p1',?, 'not-json{')`, store.KeyVehicle); err != nil {
		t.Fatal(err)
	}

	var v *domain.SavedVehicle
	if s.Get("p1", store.KeyVehicle, &v) {
		t.Fatal("corrupt value should report false")
	}
	if v != nil {
		t.Fatalf("fallback should stay nil, got %+v", v)
	}
}

func TestStoreProfileIsolation(t *testing.T) {
	s := memstore(t)

	if err := s.Set("p1", store.KeyWishlist, []string{"X"}); err != nil {
		t.Fatal(err)
	}

	var other []string
	if s.Get("p2", store.KeyWishlist, &other) {
		t.Fatal("profiles must not share state")
	}
}
