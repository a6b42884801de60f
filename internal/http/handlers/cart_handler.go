package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "comanda/internal/log"
	"comanda/internal/services"
	"comanda/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// Add handles POST /cart: one unit per click, merged per product.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("producto no válido")
	}
	if err := h.Cart.Add(sid, productID); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product_id": productID})
		return c.Status(statusFor(err)).SendString(userMessage(err))
	}
	return c.Redirect("/cart")
}

// Update handles POST /cart/update: quantity clamped to a minimum of 1.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("producto no válido")
	}
	h.Cart.SetQuantity(sid, productID, validate.Qty(c.FormValue("qty")))
	return c.Redirect("/cart")
}

// Remove handles POST /cart/remove: drops the line regardless of quantity.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("producto no válido")
	}
	h.Cart.Remove(sid, productID)
	return c.Redirect("/cart")
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv := h.Cart.View(ensureSID(c))
	return render(c, "cart", fiber.Map{"Cart": cv})
}
