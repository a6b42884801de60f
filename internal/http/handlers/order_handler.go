package handlers

import (
	"github.com/gofiber/fiber/v2"

	"comanda/internal/domain"
	applog "comanda/internal/log"
	"comanda/internal/repos"
	"comanda/internal/services"
	"comanda/internal/validate"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
	Repo  *repos.OrderRepo
}

// Checkout shows the customer-details step with the cart summary.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	cv := h.Cart.View(ensureSID(c))
	if len(cv.Lines) == 0 {
		return c.Redirect("/cart")
	}
	return render(c, "checkout", fiber.Map{
		"Cart":       cv,
		"IdentTypes": domain.IdentTypes,
	})
}

// Place handles POST /orders: validates the form, runs the submission
// workflow and redirects to the confirmation for the persisted order id.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)

	name, okName := validate.Name(c.FormValue("nombre"))
	identNumber, okIdent := validate.IdentNumber(c.FormValue("numeroIdentificacion"))
	phone, okPhone := validate.Phone(c.FormValue("telefono"))
	tableNumber, okTable := validate.TableNumber(c.FormValue("mesa"))
	if !okName || !okIdent || !okPhone || !okTable {
		applog.Security(c, "order.validation.fail", map[string]any{
			"name": okName, "ident": okIdent, "phone": okPhone, "table": okTable,
		})
		cv := h.Cart.View(sid)
		return c.Status(fiber.StatusBadRequest).Render("checkout", fiber.Map{
			"Cart":       cv,
			"IdentTypes": domain.IdentTypes,
			"Error":      domain.ErrIncompleteData.Message,
		})
	}

	form := services.CustomerForm{
		Name:        name,
		IdentType:   c.FormValue("tipoIdentificacion"),
		IdentNumber: identNumber,
		Phone:       phone,
		TableNumber: tableNumber,
	}

	orderID, sum, err := h.Order.Place(sid, form)
	if err != nil {
		applog.Error(c, "order.place.fail", err, map[string]any{"mesa": tableNumber})
		cv := h.Cart.View(sid)
		return c.Status(statusFor(err)).Render("checkout", fiber.Map{
			"Cart":       cv,
			"IdentTypes": domain.IdentTypes,
			"Error":      userMessage(err),
		})
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id": orderID,
		"mesa":     tableNumber,
		"total":    sum.Total,
	})
	return c.Redirect("/order/confirm/" + orderID)
}

// Confirm shows the confirmation page for a placed order. The reference it
// displays is the persisted order id.
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	oid := c.Params("id")
	o, lines, err := h.Repo.Get(oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Orden no encontrada"})
	}
	return render(c, "confirmation", fiber.Map{"Order": o, "Lines": lines})
}
