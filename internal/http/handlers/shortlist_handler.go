package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "sparehub/internal/log"
	"sparehub/internal/services"
)

type ShortlistHandler struct {
	Short *services.ShortlistService
}

func (h *ShortlistHandler) Wishlist(c *fiber.Ctx) error {
	sid := profileID(c)
	return c.JSON(fiber.Map{"items": h.Short.Wishlist(sid)})
}

func (h *ShortlistHandler) ToggleWish(c *fiber.Ctx) error {
	sid := profileID(c)
	sku, ok := parseSKU(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sku"})
	}
	saved, err := h.Short.ToggleWish(sid, sku)
	if err != nil {
		return fail(c, "wishlist.toggle.fail", err)
	}
	applog.Audit(c, "wishlist.toggle", map[string]any{"sku": sku, "saved": saved})
	return c.JSON(fiber.Map{"ok": true, "saved": saved})
}

func (h *ShortlistHandler) Compare(c *fiber.Ctx) error {
	sid := profileID(c)
	return c.JSON(fiber.Map{
		"skus":    h.Short.CompareList(sid),
		"columns": h.Short.CompareTable(sid),
	})
}

func (h *ShortlistHandler) ToggleCompare(c *fiber.Ctx) error {
	sid := profileID(c)
	sku, ok := parseSKU(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sku"})
	}
	added, err := h.Short.ToggleCompare(sid, sku)
	if err != nil {
		return fail(c, "compare.toggle.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true, "comparing": added, "count": len(h.Short.CompareList(sid))})
}

func (h *ShortlistHandler) ClearCompare(c *fiber.Ctx) error {
	sid := profileID(c)
	if err := h.Short.ClearCompare(sid); err != nil {
		return fail(c, "compare.clear.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
