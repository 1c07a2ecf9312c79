package services

import (
	"strings"

	"sparehub/internal/catalog"
	"sparehub/internal/domain"
	"sparehub/internal/store"
)

// FitmentService keeps the shopper's saved vehicle profile. Advisory only:
// it annotates the UI, it never filters the catalog.
type FitmentService struct {
	Store *store.Store
	Cat   *catalog.Catalog
}

func NewFitmentService(s *store.Store, cat *catalog.Catalog) *FitmentService {
	return &FitmentService{Store: s, Cat: cat}
}

func (s *FitmentService) Save(profileID, mk, year string) error {
	mk = strings.TrimSpace(mk)
	year = strings.TrimSpace(year)
	if mk == "" {
		return &domain.ValidationError{Field: "make", Msg: "make is required"}
	}
	if year == "" {
		return &domain.ValidationError{Field: "year", Msg: "year is required"}
	}
	return s.Store.Set(profileID, store.KeyVehicle, domain.SavedVehicle{Make: mk, Year: year})
}

func (s *FitmentService) Clear(profileID string) error {
	return s.Store.Set(profileID, store.KeyVehicle, (*domain.SavedVehicle)(nil))
}

// Current returns the saved vehicle, or nil when none is saved.
func (s *FitmentService) Current(profileID string) *domain.SavedVehicle {
	var v *domain.SavedVehicle
	s.Store.Get(profileID, store.KeyVehicle, &v)
	if v != nil && (v.Make == "" || v.Year == "") {
		return nil
	}
	return v
}

// Recommendations returns the first n catalog products, the storefront's
// lightweight picks for the fitment panel.
func (s *FitmentService) Recommendations(n int) []domain.Product {
	all := s.Cat.All()
	if n < len(all) {
		all = all[:n]
	}
	return all
}
