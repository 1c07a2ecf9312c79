package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sparehub/internal/services"
)

type FitmentHandler struct {
	Fit *services.FitmentService
}

const recommendationCount = 4

func (h *FitmentHandler) Get(c *fiber.Ctx) error {
	sid := profileID(c)
	return c.JSON(fiber.Map{
		"vehicle":         h.Fit.Current(sid),
		"recommendations": h.Fit.Recommendations(recommendationCount),
	})
}

func (h *FitmentHandler) Save(c *fiber.Ctx) error {
	sid := profileID(c)
	var body struct {
		Make string `json:"make"`
		Year string `json:"year"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.Fit.Save(sid, body.Make, body.Year); err != nil {
		return fail(c, "fitment.save.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true, "vehicle": h.Fit.Current(sid)})
}

func (h *FitmentHandler) Clear(c *fiber.Ctx) error {
	sid := profileID(c)
	if err := h.Fit.Clear(sid); err != nil {
		return fail(c, "fitment.clear.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
