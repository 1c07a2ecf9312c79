package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sparehub/internal/services"
)

type AnalyticsHandler struct {
	Analytics *services.AnalyticsService
}

func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days < 1 || days > 365 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be 1-365"})
	}
	return c.JSON(fiber.Map{"points": h.Analytics.RevenueSeries(days)})
}

func (h *AnalyticsHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"statuses": h.Analytics.StatusDistribution()})
}

func (h *AnalyticsHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": h.Analytics.CategoryShare(),
		"topRated":   h.Analytics.TopRated(4),
	})
}
