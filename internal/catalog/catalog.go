package catalog

import (
	"strings"
	"sync"

	"sparehub/internal/domain"
)

const maxSuggestions = 6

// Catalog holds the canonical product list, fixed at load. Only the rating
// workflow mutates a record after load, and only its Rating/Reviews fields,
// through ApplyRating.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int // sku -> position
}

func New(products []domain.Product) *Catalog {
	c := &Catalog{products: products, index: make(map[string]int, len(products))}
	for i, p := range products {
		c.index[p.SKU] = i
	}
	return c
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// BySKU returns a copy of the matching product.
func (c *Catalog) BySKU(sku string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[sku]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// All returns a fresh copy of the canonical list in load order.
func (c *Catalog) All() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ApplyRating overwrites a product's rating fields with the server's
// authoritative values. Returns false for an unknown SKU.
func (c *Catalog) ApplyRating(sku string, rating float64, reviews int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[sku]
	if !ok {
		return false
	}
	c.products[i].Rating = rating
	c.products[i].Reviews = reviews
	return true
}

// Suggest returns up to 6 products matching q for search typeahead.
// Same match fields as the filter query; empty q matches nothing.
func (c *Catalog) Suggest(q string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []domain.Product{}
	for _, p := range c.products {
		if matchesQuery(p, q) {
			out = append(out, p)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

func matchesQuery(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.SKU), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.OEM), q)
}
