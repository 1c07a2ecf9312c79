package catalog

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"sparehub/internal/domain"
)

// Normalize converts raw server-supplied records into canonical products.
// This is the only point where loose input is sanitized; everything
// downstream assumes well-formed products. Records with an empty resolved
// SKU or non-positive stock are dropped. Input order is preserved.
func Normalize(raw []map[string]any) []domain.Product {
	out := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		sku := strings.TrimSpace(firstStr(r, "sku", "vin"))
		stock := asInt(r["stock"])
		if sku == "" || stock <= 0 {
			continue
		}

		brand := strings.TrimSpace(firstStr(r, "brand", "seller_name", "sellerName"))
		seller := strings.TrimSpace(firstStr(r, "seller_name", "sellerName", "brand"))
		if brand == "" {
			brand = "Unknown"
		}
		if seller == "" {
			seller = "Unknown"
		}

		name := strings.TrimSpace(asStr(r["name"]))
		if name == "" {
			name = sku
		}
		category := strings.TrimSpace(asStr(r["category"]))
		if category == "" {
			category = "General"
		}
		condition := strings.TrimSpace(asStr(r["condition"]))
		if condition == "" {
			condition = "New"
		}
		oem := strings.TrimSpace(asStr(r["oem"]))
		if oem == "" {
			oem = sku
		}

		out = append(out, domain.Product{
			SKU:         sku,
			Name:        name,
			Category:    category,
			Brand:       brand,
			SellerName:  seller,
			SellerPhoto: strings.TrimSpace(firstStr(r, "seller_photo", "sellerPhoto")),
			OwnerID:     asInt(firstOf(r, "owner_id", "ownerId")),
			Condition:   condition,
			Description: strings.TrimSpace(firstStr(r, "description", "desc")),
			Rating:      asFloat(r["rating"]),
			Reviews:     asInt(r["reviews"]),
			Price:       asFloat(r["price"]),
			Stock:       stock,
			Badges:      asStrings(r["badges"]),
			OEM:         oem,
		})
	}
	return out
}

// LoadSeed reads a JSON array of raw product records and normalizes it.
func LoadSeed(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeed(f)
}

func ReadSeed(r io.Reader) ([]domain.Product, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}

// asFloat parses a number or numeric string, else 0. Never negative.
func asFloat(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case json.Number:
		f, _ = x.Float64()
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(x), 64)
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func asInt(v any) int {
	return int(math.Trunc(asFloat(v)))
}

func asStr(v any) string {
	s, _ := v.(string)
	return s
}

func firstOf(r map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstStr(r map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(asStr(r[k])); s != "" {
			return s
		}
	}
	return ""
}

func asStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(asStr(it)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
