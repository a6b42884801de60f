package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"comanda/internal/domain"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// ensureSID returns the session cookie, minting one on first contact. The
// cart store is keyed by this value.
func ensureSID(c *fiber.Ctx) string {
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

// statusFor maps the error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case domain.IsValidation(err):
		return fiber.StatusBadRequest
	case domain.IsNotFound(err):
		return fiber.StatusNotFound
	case domain.IsConflict(err):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// userMessage keeps driver details out of responses: domain errors carry a
// presentable message, anything else gets a generic one.
func userMessage(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return "Algo salió mal. Intenta de nuevo."
}
