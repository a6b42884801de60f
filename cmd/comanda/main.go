package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"comanda/internal/cart"
	"comanda/internal/config"
	"comanda/internal/http/handlers"
	applog "comanda/internal/log"
	"comanda/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	store := cart.NewStore()

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo salió mal. Intenta de nuevo.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Algo salió mal. Intenta de nuevo.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Verificación de seguridad fallida. Recarga la página e intenta de nuevo."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	app.Static("/static", "./web/static")
	// Guarded media to avoid traversal
	app.Get("/media/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(mediaDir, clean), true)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, store)

	// Public pages
	app.Get("/", deps.MenuHandler.Home)
	app.Get("/menu", deps.MenuHandler.Menu)

	// Cart & checkout
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Get("/checkout", deps.OrderHandler.Checkout)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Get("/order/confirm/:id", deps.OrderHandler.Confirm)

	// API
	api := app.Group("/api/v1")
	api.Get("/tables/:numero/status", limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
	}), deps.TableHandler.Check)

	// Admin back office
	admin := app.Group("/admin")
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/productos", deps.AdminHandler.ProductsPage)
	admin.Post("/productos", deps.AdminHandler.CreateProduct)
	admin.Post("/productos/:id", deps.AdminHandler.UpdateProduct)
	admin.Post("/productos/:id/delete", deps.AdminHandler.DeleteProduct)
	admin.Get("/menus", deps.AdminHandler.MenusPage)
	admin.Post("/menus/add", deps.AdminHandler.AddMenuProduct)
	admin.Post("/menus/remove", deps.AdminHandler.RemoveMenuProduct)
	admin.Get("/mesas", deps.AdminHandler.TablesPage)
	admin.Post("/mesas", deps.AdminHandler.CreateTable)
	admin.Post("/mesas/:id/estado", deps.AdminHandler.UpdateTableStatus)
	admin.Post("/mesas/:id/delete", deps.AdminHandler.DeleteTable)
	admin.Get("/clientes", deps.AdminHandler.CustomersPage)
	admin.Get("/ordenes", deps.AdminHandler.OrdersPage)
	admin.Get("/ordenes/:id", deps.AdminHandler.OrderDetail)
	admin.Post("/ordenes/:id/estado", deps.AdminHandler.UpdateOrderStatus)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página no encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
