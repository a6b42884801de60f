package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"comanda/internal/domain"
	applog "comanda/internal/log"
	"comanda/internal/pricing"
	"comanda/internal/services"
)

type MenuHandler struct {
	Catalog *services.CatalogService
}

// Home is the landing page.
func (h *MenuHandler) Home(c *fiber.Ctx) error {
	return render(c, "index", fiber.Map{"Weekdays": domain.Weekdays})
}

// productCard decorates a product with its tax-inclusive display price.
type productCard struct {
	domain.Product
	PriceWithTax float64
}

// Menu renders the weekday tabs; ?dia= selects a day, defaulting to today.
func (h *MenuHandler) Menu(c *fiber.Ctx) error {
	day := c.Query("dia")
	if !domain.IsWeekday(day) {
		day = todayWeekday()
	}

	prods, err := h.Catalog.ProductsForDay(day)
	if err != nil {
		// Degrade to an empty menu with a notice instead of failing the page.
		applog.Error(c, "menu.list.fail", err, map[string]any{"dia": day})
		return render(c, "menu", fiber.Map{
			"Day":      day,
			"Weekdays": domain.Weekdays,
			"Products": []productCard{},
			"Error":    userMessage(err),
		})
	}

	cards := make([]productCard, 0, len(prods))
	for _, p := range prods {
		cards = append(cards, productCard{Product: p, PriceWithTax: pricing.PriceWithTax(p.Price, p.IVA)})
	}
	return render(c, "menu", fiber.Map{
		"Day":      day,
		"Weekdays": domain.Weekdays,
		"Products": cards,
	})
}

func todayWeekday() string {
	// time.Weekday is Sunday-based; domain.Weekdays starts at lunes.
	idx := (int(time.Now().Weekday()) + 6) % 7
	return domain.Weekdays[idx]
}
