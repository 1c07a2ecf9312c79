package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sparehub/internal/domain"
	applog "sparehub/internal/log"
	"sparehub/internal/services"
	"sparehub/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

type skuBody struct {
	SKU string `json:"sku"`
}

func parseSKU(c *fiber.Ctx) (string, bool) {
	var body skuBody
	if err := c.BodyParser(&body); err != nil {
		return "", false
	}
	return validate.SKU(body.SKU)
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := profileID(c)
	v, err := h.Cart.View(sid)
	if err != nil {
		return fail(c, "cart.view.fail", err)
	}
	return c.JSON(v)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := profileID(c)
	sku, ok := parseSKU(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sku"})
	}
	if err := h.Cart.Add(sid, sku); err != nil {
		return fail(c, "cart.add.fail", err)
	}
	applog.Audit(c, "cart.add", map[string]any{"sku": sku})
	return c.JSON(fiber.Map{"ok": true, "count": h.Cart.ItemCount(sid)})
}

func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sid := profileID(c)
	var body struct {
		SKU string `json:"sku"`
		Qty int    `json:"qty"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	sku, ok := validate.SKU(body.SKU)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sku"})
	}

	qty, err := h.Cart.SetQuantity(sid, sku, body.Qty)
	var se *domain.StockExceededError
	if errors.As(err, &se) {
		// capped, not rejected: report the applied quantity alongside.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok": true, "qty": qty, "capped": true, "stock": se.Stock,
		})
	}
	if err != nil {
		return fail(c, "cart.qty.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true, "qty": qty})
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := profileID(c)
	sku, ok := parseSKU(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sku"})
	}
	if err := h.Cart.Remove(sid, sku); err != nil {
		return fail(c, "cart.remove.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := profileID(c)
	if err := h.Cart.Clear(sid); err != nil {
		return fail(c, "cart.clear.fail", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *CartHandler) Submit(c *fiber.Ctx) error {
	sid := profileID(c)
	res, err := h.Cart.Submit(c.Context(), sid)
	if err != nil {
		return fail(c, "order.submit.fail", err)
	}
	applog.Audit(c, "order.submit", nil)
	return c.JSON(fiber.Map{"ok": true, "message": res.Message})
}
