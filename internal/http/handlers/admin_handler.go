package handlers

import (
	"github.com/gofiber/fiber/v2"

	"comanda/internal/domain"
	applog "comanda/internal/log"
	"comanda/internal/repos"
	"comanda/internal/services"
)

type AdminHandler struct {
	Products  *repos.ProductRepo
	Catalog   *services.CatalogService
	Tables    *services.TableService
	Orders    *repos.OrderRepo
	OrderSvc  *services.OrderService
	Customers *repos.CustomerRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	counts, err := h.Orders.CountByStatus()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		counts = map[string]int{}
	}
	tables, err := h.Tables.List()
	if err != nil {
		applog.Error(c, "admin.dashboard.tables.fail", err, nil)
	}
	occupied := 0
	for _, t := range tables {
		if t.Status == domain.TableOccupied {
			occupied++
		}
	}
	return render(c, "admin_dashboard", fiber.Map{
		"Counts":   counts,
		"Statuses": domain.OrderStatuses,
		"Tables":   len(tables),
		"Occupied": occupied,
	})
}

// GET /admin/clientes
func (h *AdminHandler) CustomersPage(c *fiber.Ctx) error {
	customers, err := h.Customers.List()
	if err != nil {
		applog.Error(c, "admin.customers.list.fail", err, nil)
		return render(c, "admin_customers", fiber.Map{
			"Customers": []domain.Customer{},
			"Error":     "No se pudieron cargar los clientes",
		})
	}
	return render(c, "admin_customers", fiber.Map{"Customers": customers})
}

// GET /admin/ordenes
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	status := c.Query("estado")
	if status != "" && !domain.IsOrderStatus(status) {
		status = ""
	}
	ords, err := h.Orders.ListLatest(status, 100)
	if err != nil {
		// Degrade to an empty list with a notice.
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return render(c, "admin_orders", fiber.Map{
			"Orders":   []repos.OrderRow{},
			"Statuses": domain.OrderStatuses,
			"Filter":   status,
			"Error":    "No se pudieron cargar las órdenes",
		})
	}
	return render(c, "admin_orders", fiber.Map{
		"Orders":   ords,
		"Statuses": domain.OrderStatuses,
		"Filter":   status,
	})
}

// GET /admin/ordenes/:id
func (h *AdminHandler) OrderDetail(c *fiber.Ctx) error {
	o, lines, err := h.Orders.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Orden no encontrada"})
	}
	return render(c, "admin_order_detail", fiber.Map{
		"Order":    o,
		"Lines":    lines,
		"Statuses": domain.OrderStatuses,
	})
}

// POST /admin/ordenes/:id/estado
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.FormValue("estado")
	if id == "" || status == "" {
		return c.Status(fiber.StatusBadRequest).SendString("faltan datos")
	}
	if err := h.OrderSvc.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id, "estado": status})
		return c.Status(statusFor(err)).SendString(userMessage(err))
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "estado": status})
	return c.Redirect("/admin/ordenes/" + id)
}
