package services

import (
	"database/sql"

	"comanda/internal/cart"
	"comanda/internal/domain"
	"comanda/internal/pricing"
	"comanda/internal/repos"
)

type CartService struct {
	Store *cart.Store
	Prods *repos.ProductRepo
}

func NewCartService(store *cart.Store, prods *repos.ProductRepo) *CartService {
	return &CartService{Store: store, Prods: prods}
}

// Add puts one unit of the product into the session's cart; repeated adds
// merge into a single line.
func (s *CartService) Add(sessionID string, productID int64) error {
	p, err := s.Prods.Get(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrProductNotFound
		}
		return domain.NewPersistenceError("no se pudo cargar el producto", err)
	}
	s.Store.Add(sessionID, p)
	return nil
}

func (s *CartService) SetQuantity(sessionID string, productID int64, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.Store.SetQuantity(sessionID, productID, qty)
}

func (s *CartService) Remove(sessionID string, productID int64) {
	s.Store.Remove(sessionID, productID)
}

func (s *CartService) Clear(sessionID string) {
	s.Store.Clear(sessionID)
}

type CartView struct {
	Lines     []cart.Line
	Summary   pricing.Summary
	ItemCount int
}

func (s *CartService) View(sessionID string) CartView {
	lines := s.Store.Lines(sessionID)
	n := 0
	for _, l := range lines {
		n += l.Qty
	}
	return CartView{Lines: lines, Summary: pricing.Summarize(lines), ItemCount: n}
}
