package config

import (
	"log"
	"os"
)

type Config struct {
	Port            string
	DBDSN           string
	SeedFile        string
	RatingCtxFile   string
	OrderURL        string
	ContactURL      string
	RateURLTemplate string
	LogFile         string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "sparehub.db"
	} // sqlite file in project root
	seed := os.Getenv("SEED_FILE")
	if seed == "" {
		seed = "./seed/products.json"
	}
	rctx := os.Getenv("RATING_CONTEXT_FILE")
	if rctx == "" {
		rctx = "./seed/rating_context.json"
	}
	orderURL := os.Getenv("ORDER_URL")
	if orderURL == "" {
		orderURL = "http://localhost:9090/orders/create/"
	}
	contactURL := os.Getenv("CONTACT_URL")
	if contactURL == "" {
		contactURL = "http://localhost:9090/contact/messages/create/"
	}
	rateTpl := os.Getenv("RATE_URL_TEMPLATE")
	if rateTpl == "" {
		rateTpl = "http://localhost:9090/products/{sku}/rate/"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./sparehub.log" // default log sink in project root
	}

	cfg := Config{
		Port:            port,
		DBDSN:           dsn,
		SeedFile:        seed,
		RatingCtxFile:   rctx,
		OrderURL:        orderURL,
		ContactURL:      contactURL,
		RateURLTemplate: rateTpl,
		LogFile:         logFile,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s SEED_FILE=%s ORDER_URL=%s CONTACT_URL=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.SeedFile, cfg.OrderURL, cfg.ContactURL, cfg.LogFile)
	return cfg
}
