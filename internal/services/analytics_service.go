package services

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"sparehub/internal/catalog"
	"sparehub/internal/domain"
)

// AnalyticsService produces the chart-ready series the vendor dashboard
// consumes. Rendering belongs to whatever charting layer sits on top.
type AnalyticsService struct {
	Cat *catalog.Catalog
	rng *rand.Rand
}

func NewAnalyticsService(cat *catalog.Catalog, rng *rand.Rand) *AnalyticsService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AnalyticsService{Cat: cat, rng: rng}
}

type RevenuePoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Value int    `json:"value"`
}

// RevenueSeries generates one point per day for the trailing window: a slow
// random walk plus sine seasonality and noise, floored at 120. Demo data,
// same shape the dashboard's revenue chart plots.
func (s *AnalyticsService) RevenueSeries(days int) []RevenuePoint {
	if days < 1 {
		days = 1
	}
	points := make([]RevenuePoint, 0, days)
	now := time.Now()
	base := 420.0
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		wave := math.Sin(float64(days-i)/6) * 60
		noise := (s.rng.Float64() - 0.5) * 80
		base += (s.rng.Float64() - 0.45) * 10
		y := math.Round(base + wave + noise)
		if y < 120 {
			y = 120
		}
		points = append(points, RevenuePoint{Date: d.Format("2006-01-02"), Value: int(y)})
	}
	return points
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusDistribution is the dashboard's order-status doughnut split.
func (s *AnalyticsService) StatusDistribution() []StatusCount {
	return []StatusCount{
		{Status: "Pending", Count: 18},
		{Status: "Confirmed", Count: 42},
		{Status: "Shipped", Count: 28},
		{Status: "Delivered", Count: 156},
		{Status: "Cancelled", Count: 4},
	}
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryShare counts canonical products per category, category order by
// first appearance in the catalog.
func (s *AnalyticsService) CategoryShare() []CategoryCount {
	order := []string{}
	counts := map[string]int{}
	for _, p := range s.Cat.All() {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}
	out := make([]CategoryCount, len(order))
	for i, c := range order {
		out[i] = CategoryCount{Category: c, Count: counts[c]}
	}
	return out
}

// TopRated returns the n best-rated products, ties kept in catalog order.
func (s *AnalyticsService) TopRated(n int) []domain.Product {
	all := s.Cat.All()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Rating > all[j].Rating })
	if n < len(all) {
		all = all[:n]
	}
	return all
}
