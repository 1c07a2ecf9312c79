package handlers

import (
	"math/rand"
	"time"

	"sparehub/internal/catalog"
	"sparehub/internal/domain"
	"sparehub/internal/remote"
	"sparehub/internal/services"
	"sparehub/internal/store"
)

type Deps struct {
	CatalogHandler   *CatalogHandler
	CartHandler      *CartHandler
	ShortlistHandler *ShortlistHandler
	RatingHandler    *RatingHandler
	FitmentHandler   *FitmentHandler
	ContactHandler   *ContactHandler
	AnalyticsHandler *AnalyticsHandler
}

func NewDeps(st *store.Store, cat *catalog.Catalog, client *remote.Client, rctx domain.RatingContext) *Deps {
	cartSvc := services.NewCartService(st, cat, client)
	shortSvc := services.NewShortlistService(st, cat)
	rateSvc := services.NewRatingService(st, cat, rctx, client)
	fitSvc := services.NewFitmentService(st, cat)
	anaSvc := services.NewAnalyticsService(cat, rand.New(rand.NewSource(time.Now().UnixNano())))

	return &Deps{
		CatalogHandler:   &CatalogHandler{Cat: cat},
		CartHandler:      &CartHandler{Cart: cartSvc},
		ShortlistHandler: &ShortlistHandler{Short: shortSvc},
		RatingHandler:    &RatingHandler{Ratings: rateSvc},
		FitmentHandler:   &FitmentHandler{Fit: fitSvc},
		ContactHandler:   &ContactHandler{Client: client},
		AnalyticsHandler: &AnalyticsHandler{Analytics: anaSvc},
	}
}
