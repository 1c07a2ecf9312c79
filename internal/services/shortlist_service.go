package services

import (
	"fmt"

	"sparehub/internal/catalog"
	"sparehub/internal/domain"
	"sparehub/internal/store"
)

const compareCap = 3

const placeholder = "—"

// ShortlistService owns the wishlist (unbounded SKU set) and the compare
// list (ordered, hard cap of 3, no eviction).
type ShortlistService struct {
	Store *store.Store
	Cat   *catalog.Catalog
}

func NewShortlistService(s *store.Store, cat *catalog.Catalog) *ShortlistService {
	return &ShortlistService{Store: s, Cat: cat}
}

func (s *ShortlistService) Wishlist(profileID string) []string {
	wish := []string{}
	s.Store.Get(profileID, store.KeyWishlist, &wish)
	return wish
}

// ToggleWish flips membership and reports whether the SKU ended up saved.
func (s *ShortlistService) ToggleWish(profileID, sku string) (bool, error) {
	if _, ok := s.Cat.BySKU(sku); !ok {
		return false, domain.ErrUnknownProduct
	}
	wish := s.Wishlist(profileID)
	kept := wish[:0]
	removed := false
	for _, x := range wish {
		if x == sku {
			removed = true
			continue
		}
		kept = append(kept, x)
	}
	if !removed {
		kept = append(kept, sku)
	}
	if err := s.Store.Set(profileID, store.KeyWishlist, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

func (s *ShortlistService) CompareList(profileID string) []string {
	cmp := []string{}
	s.Store.Get(profileID, store.KeyCompare, &cmp)
	return cmp
}

// ToggleCompare flips membership. Adding a 4th item while 3 are present is
// rejected with ErrCompareFull and no mutation.
func (s *ShortlistService) ToggleCompare(profileID, sku string) (bool, error) {
	if _, ok := s.Cat.BySKU(sku); !ok {
		return false, domain.ErrUnknownProduct
	}
	cmp := s.CompareList(profileID)
	kept := cmp[:0]
	removed := false
	for _, x := range cmp {
		if x == sku {
			removed = true
			continue
		}
		kept = append(kept, x)
	}
	if !removed {
		if len(kept) >= compareCap {
			return false, domain.ErrCompareFull
		}
		kept = append(kept, sku)
	}
	if err := s.Store.Set(profileID, store.KeyCompare, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

func (s *ShortlistService) ClearCompare(profileID string) error {
	return s.Store.Set(profileID, store.KeyCompare, []string{})
}

// CompareColumn is one display column of the side-by-side table. Unfilled
// columns carry the placeholder in every cell; the table shape is always
// 3 columns regardless of how many are filled.
type CompareColumn struct {
	Filled    bool   `json:"filled"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Category  string `json:"category"`
	OEM       string `json:"oem"`
	Condition string `json:"condition"`
	Rating    string `json:"rating"`
	Price     string `json:"price"`
	Stock     string `json:"stock"`
}

func (s *ShortlistService) CompareTable(profileID string) [compareCap]CompareColumn {
	var cols [compareCap]CompareColumn
	list := s.CompareList(profileID)
	for i := range cols {
		cols[i] = CompareColumn{
			SKU: placeholder, Name: placeholder, Brand: placeholder, Category: placeholder,
			OEM: placeholder, Condition: placeholder, Rating: placeholder,
			Price: placeholder, Stock: placeholder,
		}
		if i >= len(list) {
			continue
		}
		p, ok := s.Cat.BySKU(list[i])
		if !ok {
			continue
		}
		cols[i] = CompareColumn{
			Filled:    true,
			SKU:       p.SKU,
			Name:      p.Name,
			Brand:     p.Brand,
			Category:  p.Category,
			OEM:       p.OEM,
			Condition: p.Condition,
			Rating:    fmt.Sprintf("%.1f (%d)", p.Rating, p.Reviews),
			Price:     fmt.Sprintf("$%.2f", p.Price),
			Stock:     fmt.Sprintf("%d", p.Stock),
		}
	}
	return cols
}
