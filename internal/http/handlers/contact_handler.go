package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "sparehub/internal/log"
	"sparehub/internal/remote"
	"sparehub/internal/validate"
)

type ContactHandler struct {
	Client *remote.Client
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var body remote.ContactMessage
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	name, ok := validate.Name(body.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "a valid email is required"})
	}
	subject, ok := validate.Subject(body.Subject)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "subject is required"})
	}
	msg, ok := validate.MessageBody(body.MessageBody)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	res, err := h.Client.SubmitContact(c.Context(), remote.ContactMessage{
		Name: name, Email: email, Subject: subject, MessageBody: msg,
	})
	if err != nil {
		return fail(c, "contact.submit.fail", err)
	}
	applog.Audit(c, "contact.submit", map[string]any{"subject": subject})
	return c.JSON(fiber.Map{"ok": true, "message": res.Message})
}
