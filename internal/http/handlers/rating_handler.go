package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "sparehub/internal/log"
	"sparehub/internal/services"
	"sparehub/internal/validate"
)

type RatingHandler struct {
	Ratings *services.RatingService
}

type ratingBody struct {
	SKU   string `json:"sku"`
	Value int    `json:"value"`
}

func (h *RatingHandler) Select(c *fiber.Ctx) error {
	sid := profileID(c)
	var body ratingBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	sku, ok := validate.SKU(body.SKU)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sku"})
	}
	if err := h.Ratings.Select(sid, sku, body.Value); err != nil {
		return fail(c, "rating.select.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true, "pending": body.Value})
}

func (h *RatingHandler) Cancel(c *fiber.Ctx) error {
	sid := profileID(c)
	sku, ok := parseSKU(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sku"})
	}
	h.Ratings.Cancel(sid, sku)
	return c.JSON(fiber.Map{"ok": true})
}

// Submit confirms the rating. Value may be omitted to use the pending
// selection from Select.
func (h *RatingHandler) Submit(c *fiber.Ctx) error {
	sid := profileID(c)
	var body ratingBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	sku, ok := validate.SKU(body.SKU)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sku"})
	}

	res, err := h.Ratings.Submit(c.Context(), sid, sku, body.Value)
	if err != nil {
		return fail(c, "rating.submit.fail", err)
	}
	applog.Audit(c, "rating.submit", map[string]any{"sku": sku})
	return c.JSON(fiber.Map{
		"ok":      true,
		"rating":  res.Rating,
		"reviews": res.Reviews,
		"message": res.Message,
	})
}
