package main

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"sparehub/internal/catalog"
	"sparehub/internal/config"
	"sparehub/internal/domain"
	"sparehub/internal/http/handlers"
	applog "sparehub/internal/log"
	"sparehub/internal/remote"
	"sparehub/internal/store"
)

func loadRatingContext(path string) domain.RatingContext {
	var rctx domain.RatingContext
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[warn] rating context %s unavailable, rating disabled: %v", path, err)
		return rctx
	}
	if err := json.Unmarshal(raw, &rctx); err != nil {
		log.Printf("[warn] rating context %s malformed, rating disabled: %v", path, err)
		return domain.RatingContext{}
	}
	return rctx
}

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	st, err := store.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Canonical catalog: normalized once at load, fixed afterwards.
	products, err := catalog.LoadSeed(cfg.SeedFile)
	if err != nil {
		log.Fatal(err)
	}
	cat := catalog.New(products)
	log.Printf("[catalog] %d products loaded from %s", cat.Len(), cfg.SeedFile)

	rctx := loadRatingContext(cfg.RatingCtxFile)
	if rctx.RateURLTemplate == "" {
		rctx.RateURLTemplate = cfg.RateURLTemplate
	}

	client := remote.NewClient(cfg.OrderURL, cfg.ContactURL, rctx.RateURLTemplate)
	deps := handlers.NewDeps(st, cat, client, rctx)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	api := app.Group("/api/v1")

	suggestLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|suggest"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.suggest.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})

	api.Get("/catalog", deps.CatalogHandler.List)
	api.Get("/suggest", suggestLimiter, deps.CatalogHandler.Suggest)
	api.Get("/products/:sku", deps.CatalogHandler.Detail)

	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Post("/cart/quantity", deps.CartHandler.SetQuantity)
	api.Post("/cart/remove", deps.CartHandler.Remove)
	api.Post("/cart/clear", deps.CartHandler.Clear)
	api.Post("/cart/submit", deps.CartHandler.Submit)

	api.Get("/wishlist", deps.ShortlistHandler.Wishlist)
	api.Post("/wishlist/toggle", deps.ShortlistHandler.ToggleWish)
	api.Get("/compare", deps.ShortlistHandler.Compare)
	api.Post("/compare/toggle", deps.ShortlistHandler.ToggleCompare)
	api.Post("/compare/clear", deps.ShortlistHandler.ClearCompare)

	api.Post("/rating/select", deps.RatingHandler.Select)
	api.Post("/rating/cancel", deps.RatingHandler.Cancel)
	api.Post("/rating/submit", deps.RatingHandler.Submit)

	api.Get("/fitment", deps.FitmentHandler.Get)
	api.Post("/fitment", deps.FitmentHandler.Save)
	api.Delete("/fitment", deps.FitmentHandler.Clear)

	api.Post("/contact", deps.ContactHandler.Submit)

	api.Get("/analytics/revenue", deps.AnalyticsHandler.Revenue)
	api.Get("/analytics/status", deps.AnalyticsHandler.Status)
	api.Get("/analytics/categories", deps.AnalyticsHandler.Categories)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
