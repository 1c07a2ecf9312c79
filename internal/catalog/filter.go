package catalog

import (
	"sort"
	"strings"

	"sparehub/internal/domain"
)

// Sort keys. Relevance keeps load order.
const (
	SortRelevance  = "relevance"
	SortPriceAsc   = "priceAsc"
	SortPriceDesc  = "priceDesc"
	SortRatingDesc = "ratingDesc"
	SortStockDesc  = "stockDesc"
)

// Stock modes. Low means 0 < stock <= 5.
const (
	StockAll = "All"
	StockIn  = "In"
	StockLow = "Low"
)

// Filter is the predicate bundle the storefront UI drives. Nil price bounds
// are wildcards; absence, not zero, so a nil MinPrice keeps zero-priced
// products in.
type Filter struct {
	Query       string
	Category    string
	Brand       string
	MinPrice    *float64
	MaxPrice    *float64
	AllowNew    bool
	AllowRefurb bool
	MinRating   float64 // 0, 4.0 or 4.5
	StockMode   string
	SortBy      string
}

// DefaultFilter mirrors the storefront's reset state: everything wide open
// except condition, which defaults to New only.
func DefaultFilter() Filter {
	return Filter{
		Category:  "All",
		Brand:     "All",
		AllowNew:  true,
		StockMode: StockAll,
		SortBy:    SortRelevance,
	}
}

// ActiveCount reports how many predicates differ from the default, for UI
// feedback. The condition rule is deliberately asymmetric around the New-only
// default: unchecking New or checking Refurbished both count.
func (f Filter) ActiveCount() int {
	n := 0
	if strings.TrimSpace(f.Query) != "" {
		n++
	}
	if f.Category != "" && f.Category != "All" {
		n++
	}
	if f.Brand != "" && f.Brand != "All" {
		n++
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		n++
	}
	if !f.AllowNew || f.AllowRefurb {
		n++
	}
	if f.MinRating > 0 {
		n++
	}
	if f.StockMode != "" && f.StockMode != StockAll {
		n++
	}
	return n
}

func (f Filter) matches(p domain.Product) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" && !matchesQuery(p, q) {
		return false
	}
	if f.Category != "" && f.Category != "All" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && f.Brand != "All" && p.Brand != f.Brand {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	// No box checked excludes everything. The checkboxes are user-owned
	// state, not a default to repair.
	switch p.Condition {
	case "New":
		if !f.AllowNew {
			return false
		}
	case "Refurbished":
		if !f.AllowRefurb {
			return false
		}
	default:
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	switch f.StockMode {
	case "", StockAll:
	case StockIn:
		if p.Stock <= 0 {
			return false
		}
	case StockLow:
		if p.Stock <= 0 || p.Stock > 5 {
			return false
		}
	default:
		return false
	}
	return true
}

// Search evaluates every predicate conjunctively in a single pass, then
// stable-sorts by the selected key. The canonical list is never mutated; the
// returned slice is fresh on every call.
func (c *Catalog) Search(f Filter) []domain.Product {
	c.mu.RLock()
	view := []domain.Product{}
	for _, p := range c.products {
		if f.matches(p) {
			view = append(view, p)
		}
	}
	c.mu.RUnlock()

	switch f.SortBy {
	case SortPriceAsc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price < view[j].Price })
	case SortPriceDesc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price > view[j].Price })
	case SortRatingDesc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Rating > view[j].Rating })
	case SortStockDesc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Stock > view[j].Stock })
	}
	return view
}
