package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sparehub/internal/catalog"
	"sparehub/internal/validate"
)

type CatalogHandler struct {
	Cat *catalog.Catalog
}

func parseBool(v string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return def
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func parsePrice(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

func parseFilter(c *fiber.Ctx) catalog.Filter {
	f := catalog.DefaultFilter()
	f.Query = strings.TrimSpace(c.Query("q"))
	f.Category = c.Query("category", "All")
	f.Brand = c.Query("brand", "All")
	f.MinPrice = parsePrice(c.Query("minPrice"))
	f.MaxPrice = parsePrice(c.Query("maxPrice"))
	f.AllowNew = parseBool(c.Query("condNew"), true)
	f.AllowRefurb = parseBool(c.Query("condRefurb"), false)
	switch c.Query("minRating") {
	case "4", "4.0":
		f.MinRating = 4.0
	case "4.5":
		f.MinRating = 4.5
	}
	switch c.Query("stock") {
	case catalog.StockIn:
		f.StockMode = catalog.StockIn
	case catalog.StockLow:
		f.StockMode = catalog.StockLow
	}
	switch c.Query("sort") {
	case catalog.SortPriceAsc, catalog.SortPriceDesc, catalog.SortRatingDesc, catalog.SortStockDesc:
		f.SortBy = c.Query("sort")
	}
	return f
}

// List applies the filter bundle from the query string and returns the
// visible view plus the active-predicate count for the UI's filter badge.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	f := parseFilter(c)
	items := h.Cat.Search(f)
	return c.JSON(fiber.Map{
		"items":         items,
		"count":         len(items),
		"activeFilters": f.ActiveCount(),
	})
}

func (h *CatalogHandler) Suggest(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
	}
	return c.JSON(fiber.Map{"items": h.Cat.Suggest(q)})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	sku, ok := validate.SKU(c.Params("sku"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid sku"})
	}
	p, found := h.Cat.BySKU(sku)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "this item is no longer available"})
	}
	return c.JSON(fiber.Map{"product": p, "stockStatus": p.StockStatus()})
}
