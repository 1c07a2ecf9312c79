package domain

// Product is the canonical catalog record. The normalizer is the only
// producer; after load only the rating workflow touches Rating/Reviews.
type Product struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	SellerName  string   `json:"sellerName"`
	SellerPhoto string   `json:"sellerPhoto,omitempty"`
	OwnerID     int      `json:"ownerId"`
	Condition   string   `json:"condition"` // New | Refurbished
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Badges      []string `json:"badges,omitempty"`
	OEM         string   `json:"oem"`
}

// StockStatus buckets a product the way the storefront badges it.
func (p Product) StockStatus() string {
	switch {
	case p.Stock <= 0:
		return "OUT_OF_STOCK"
	case p.Stock <= 5:
		return "LOW_STOCK"
	}
	return "IN_STOCK"
}

type CartLine struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

// SavedVehicle is the fitment profile. Advisory only; never a filter predicate.
type SavedVehicle struct {
	Make string `json:"make"`
	Year string `json:"year"`
}

// RatingContext parameterizes the rating workflow. Consumed once at startup.
type RatingContext struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	CanRate         bool   `json:"can_rate"`
	CurrentUserID   int    `json:"current_user_id"`
	LoginURL        string `json:"login_url"`
	RateURLTemplate string `json:"rate_url_template"`
}
