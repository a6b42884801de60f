package services

import (
	"database/sql"

	"comanda/internal/domain"
	"comanda/internal/repos"
)

// CatalogService answers "what is on the menu today" for the public pages
// and manages the weekday assignments for the back office.
type CatalogService struct {
	Menus *repos.MenuRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(menus *repos.MenuRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Menus: menus, Prods: prods}
}

func (s *CatalogService) menuFor(weekday string) (domain.Menu, error) {
	if !domain.IsWeekday(weekday) {
		return domain.Menu{}, domain.ErrMenuNotFound
	}
	m, err := s.Menus.ByWeekday(weekday)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Menu{}, domain.ErrMenuNotFound
		}
		return domain.Menu{}, domain.NewPersistenceError("no se pudo cargar el menú", err)
	}
	return m, nil
}

// ProductsForDay returns the dishes offered on one weekday.
func (s *CatalogService) ProductsForDay(weekday string) ([]domain.Product, error) {
	m, err := s.menuFor(weekday)
	if err != nil {
		return nil, err
	}
	out, err := s.Menus.Products(m.ID)
	if err != nil {
		return nil, domain.NewPersistenceError("no se pudieron cargar los productos del menú", err)
	}
	return out, nil
}

// AddToMenu pairs a product with a weekday menu. A pairing that already
// exists is rejected and the menu's set is left unchanged.
func (s *CatalogService) AddToMenu(weekday string, productID int64) error {
	m, err := s.menuFor(weekday)
	if err != nil {
		return err
	}
	if _, err := s.Prods.Get(productID); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrProductNotFound
		}
		return domain.NewPersistenceError("no se pudo verificar el producto", err)
	}
	dup, err := s.Menus.Contains(m.ID, productID)
	if err != nil {
		return domain.NewPersistenceError("no se pudo verificar el menú", err)
	}
	if dup {
		return domain.ErrProductInMenu
	}
	if err := s.Menus.AddProduct(m.ID, productID); err != nil {
		return domain.NewPersistenceError("no se pudo agregar el producto al menú", err)
	}
	return nil
}

func (s *CatalogService) RemoveFromMenu(weekday string, productID int64) error {
	m, err := s.menuFor(weekday)
	if err != nil {
		return err
	}
	if err := s.Menus.RemoveProduct(m.ID, productID); err != nil {
		return domain.NewPersistenceError("no se pudo quitar el producto del menú", err)
	}
	return nil
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, domain.NewPersistenceError("no se pudo cargar el producto", err)
	}
	return p, nil
}
