package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"comanda/internal/domain"
	applog "comanda/internal/log"
	"comanda/internal/validate"
)

// ---------- Products ----------

// GET /admin/productos
func (h *AdminHandler) ProductsPage(c *fiber.Ctx) error {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	prods, err := h.Products.Search(q)
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return render(c, "admin_products", fiber.Map{
			"Products": []domain.Product{},
			"Query":    q,
			"Error":    "No se pudieron cargar los productos",
		})
	}
	return render(c, "admin_products", fiber.Map{"Products": prods, "Query": q})
}

func productFromForm(c *fiber.Ctx) (domain.Product, bool) {
	name, okName := validate.Name(c.FormValue("nombre"))
	price, okPrice := validate.Price(c.FormValue("precio"))
	iva, okIVA := validate.TaxRate(c.FormValue("iva"))
	prep, okPrep := validate.Minutes(c.FormValue("tiempoPreparacion"))
	if !okName || !okPrice || !okIVA || !okPrep {
		return domain.Product{}, false
	}
	return domain.Product{
		Name:        name,
		Description: strings.TrimSpace(c.FormValue("descripcion")),
		Price:       price,
		IVA:         iva,
		PrepMinutes: prep,
		Image:       strings.TrimSpace(c.FormValue("imagen")),
	}, true
}

// POST /admin/productos
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	p, ok := productFromForm(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("datos de producto no válidos")
	}
	id, err := h.Products.Create(p)
	if err != nil {
		applog.Error(c, "admin.products.create.fail", err, map[string]any{"nombre": p.Name})
		return c.Status(fiber.StatusBadRequest).SendString("no se pudo crear el producto")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": id, "nombre": p.Name})
	return c.Redirect("/admin/productos")
}

// POST /admin/productos/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	p, ok := productFromForm(c)
	if !okID || !ok {
		return c.Status(fiber.StatusBadRequest).SendString("datos de producto no válidos")
	}
	p.ID = id
	if err := h.Products.Update(p); err != nil {
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("no se pudo actualizar el producto")
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.Redirect("/admin/productos")
}

// POST /admin/productos/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("producto no válido")
	}
	if err := h.Products.Delete(id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("no se pudo eliminar el producto")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin/productos")
}

// ---------- Weekly menus ----------

// GET /admin/menus
func (h *AdminHandler) MenusPage(c *fiber.Ctx) error {
	day := c.Query("dia")
	if !domain.IsWeekday(day) {
		day = domain.Weekdays[0]
	}
	assigned, err := h.Catalog.ProductsForDay(day)
	if err != nil {
		applog.Error(c, "admin.menus.list.fail", err, map[string]any{"dia": day})
		assigned = []domain.Product{}
	}
	all, err := h.Products.List()
	if err != nil {
		applog.Error(c, "admin.menus.products.fail", err, nil)
		all = []domain.Product{}
	}
	return render(c, "admin_menus", fiber.Map{
		"Day":      day,
		"Weekdays": domain.Weekdays,
		"Assigned": assigned,
		"Products": all,
	})
}

// POST /admin/menus/add
func (h *AdminHandler) AddMenuProduct(c *fiber.Ctx) error {
	day := c.FormValue("dia")
	productID, ok := validate.ID(c.FormValue("productId"))
	if !domain.IsWeekday(day) || !ok {
		return c.Status(fiber.StatusBadRequest).SendString("datos no válidos")
	}
	if err := h.Catalog.AddToMenu(day, productID); err != nil {
		applog.Error(c, "admin.menus.add.fail", err, map[string]any{"dia": day, "product_id": productID})
		return c.Status(statusFor(err)).SendString(userMessage(err))
	}
	applog.Audit(c, "admin.menus.add", map[string]any{"dia": day, "product_id": productID})
	return c.Redirect("/admin/menus?dia=" + day)
}

// POST /admin/menus/remove
func (h *AdminHandler) RemoveMenuProduct(c *fiber.Ctx) error {
	day := c.FormValue("dia")
	productID, ok := validate.ID(c.FormValue("productId"))
	if !domain.IsWeekday(day) || !ok {
		return c.Status(fiber.StatusBadRequest).SendString("datos no válidos")
	}
	if err := h.Catalog.RemoveFromMenu(day, productID); err != nil {
		applog.Error(c, "admin.menus.remove.fail", err, map[string]any{"dia": day, "product_id": productID})
		return c.Status(statusFor(err)).SendString(userMessage(err))
	}
	applog.Audit(c, "admin.menus.remove", map[string]any{"dia": day, "product_id": productID})
	return c.Redirect("/admin/menus?dia=" + day)
}

// ---------- Tables ----------

// GET /admin/mesas
func (h *AdminHandler) TablesPage(c *fiber.Ctx) error {
	tables, err := h.Tables.List()
	if err != nil {
		applog.Error(c, "admin.tables.list.fail", err, nil)
		return render(c, "admin_tables", fiber.Map{
			"Tables":   []domain.Table{},
			"Statuses": domain.TableStatuses,
			"Error":    "No se pudieron cargar las mesas",
		})
	}
	return render(c, "admin_tables", fiber.Map{"Tables": tables, "Statuses": domain.TableStatuses})
}

// POST /admin/mesas
func (h *AdminHandler) CreateTable(c *fiber.Ctx) error {
	number, okNum := validate.TableNumber(c.FormValue("numero"))
	capacity, okCap := validate.Capacity(c.FormValue("capacidad"))
	if !okNum || !okCap {
		return c.Status(fiber.StatusBadRequest).SendString("datos de mesa no válidos")
	}
	id, err := h.Tables.Create(number, capacity)
	if err != nil {
		applog.Error(c, "admin.tables.create.fail", err, map[string]any{"numero": number})
		return c.Status(statusFor(err)).SendString(userMessage(err))
	}
	applog.Audit(c, "admin.tables.create", map[string]any{"table_id": id, "numero": number})
	return c.Redirect("/admin/mesas")
}

// POST /admin/mesas/:id/estado
func (h *AdminHandler) UpdateTableStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	status := c.FormValue("estado")
	if !ok || status == "" {
		return c.Status(fiber.StatusBadRequest).SendString("faltan datos")
	}
	if err := h.Tables.SetStatus(id, status); err != nil {
		applog.Error(c, "admin.tables.update.fail", err, map[string]any{"table_id": id, "estado": status})
		return c.Status(statusFor(err)).SendString(userMessage(err))
	}
	applog.Audit(c, "admin.tables.update", map[string]any{"table_id": id, "estado": status})
	return c.Redirect("/admin/mesas")
}

// POST /admin/mesas/:id/delete
func (h *AdminHandler) DeleteTable(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("mesa no válida")
	}
	if err := h.Tables.Delete(id); err != nil {
		applog.Error(c, "admin.tables.delete.fail", err, map[string]any{"table_id": id})
		return c.Status(statusFor(err)).SendString(userMessage(err))
	}
	applog.Audit(c, "admin.tables.delete", map[string]any{"table_id": id})
	return c.Redirect("/admin/mesas")
}
