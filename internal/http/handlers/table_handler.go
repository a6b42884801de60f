package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "comanda/internal/log"
	"comanda/internal/services"
	"comanda/internal/validate"
)

// TableHandler serves the JSON table-status API.
type TableHandler struct {
	Tables *services.TableService
}

// Check handles GET /api/v1/tables/:numero/status.
func (h *TableHandler) Check(c *fiber.Ctx) error {
	number, ok := validate.TableNumber(c.Params("numero"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "número de mesa no válido"})
	}
	a, err := h.Tables.Check(number)
	if err != nil {
		applog.Error(c, "table.check.fail", err, map[string]any{"numero": number})
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": userMessage(err)})
	}
	return c.JSON(a)
}
