package handlers

import (
	"comanda/internal/cart"
	"comanda/internal/config"
	"comanda/internal/repos"
	"comanda/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	MenuHandler  *MenuHandler
	CartHandler  *CartHandler
	OrderHandler *OrderHandler
	TableHandler *TableHandler
	AdminHandler *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, store *cart.Store) *Deps {
	prodRepo := repos.NewProductRepo(db)
	menuRepo := repos.NewMenuRepo(db)
	tableRepo := repos.NewTableRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	customerRepo := repos.NewCustomerRepo(db)

	catalogSvc := services.NewCatalogService(menuRepo, prodRepo)
	cartSvc := services.NewCartService(store, prodRepo)
	orderSvc := services.NewOrderService(store, orderRepo)
	tableSvc := services.NewTableService(tableRepo)

	return &Deps{
		MenuHandler:  &MenuHandler{Catalog: catalogSvc},
		CartHandler:  &CartHandler{Cart: cartSvc},
		OrderHandler: &OrderHandler{Cart: cartSvc, Order: orderSvc, Repo: orderRepo},
		TableHandler: &TableHandler{Tables: tableSvc},
		AdminHandler: &AdminHandler{
			Products:  prodRepo,
			Catalog:   catalogSvc,
			Tables:    tableSvc,
			Orders:    orderRepo,
			OrderSvc:  orderSvc,
			Customers: customerRepo,
		},
	}
}
