package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sparehub/internal/domain"
	applog "sparehub/internal/log"
)

// profileID resolves the caller's browser profile from the sid cookie,
// minting one on first contact.
func profileID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

// fail maps the engine's error taxonomy onto HTTP statuses and a JSON body.
func fail(c *fiber.Ctx, action string, err error) error {
	var (
		se *domain.StockExceededError
		ve *domain.ValidationError
		re *domain.RedirectError
		rv *domain.RemoteValidationError
	)
	switch {
	case errors.As(err, &se):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": se.Error(), "sku": se.SKU, "stock": se.Stock,
		})
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.As(err, &re):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": re.Error(), "login_url": re.URL,
		})
	case errors.As(err, &rv):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": rv.Msg, "details": rv.Details,
		})
	case errors.Is(err, domain.ErrUnknownProduct):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrCompareFull),
		errors.Is(err, domain.ErrAlreadyRated),
		errors.Is(err, domain.ErrSubmitPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrRemoteCall):
		applog.Error(c, action, err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "submission failed, please try again"})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
}
