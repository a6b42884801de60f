// Package cart holds the in-progress selection for each browser session.
// Nothing here is persisted: the store lives and dies with the process,
// and a session's lines are wiped once its order is placed.
package cart

import (
	"sync"

	"comanda/internal/domain"
)

type Line struct {
	Product domain.Product
	Qty     int
}

// Subtotal is the line's pre-tax amount.
func (l Line) Subtotal() float64 { return l.Product.Price * float64(l.Qty) }

// Store keeps one ordered line list per session id. It is an explicit,
// injected object; handlers receive it through Deps rather than reaching
// for package state.
type Store struct {
	mu    sync.Mutex
	lines map[string][]Line
}

func NewStore() *Store {
	return &Store{lines: make(map[string][]Line)}
}

// Add inserts the product with quantity 1, or bumps the quantity when the
// product is already in the session's cart.
func (s *Store) Add(sessionID string, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls := s.lines[sessionID]
	for i := range ls {
		if ls[i].Product.ID == p.ID {
			ls[i].Qty++
			return
		}
	}
	s.lines[sessionID] = append(ls, Line{Product: p, Qty: 1})
}

// SetQuantity overwrites an existing line's quantity. Callers clamp to a
// minimum of 1; a product not in the cart is ignored.
func (s *Store) SetQuantity(sessionID string, productID int64, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls := s.lines[sessionID]
	for i := range ls {
		if ls[i].Product.ID == productID {
			ls[i].Qty = qty
			return
		}
	}
}

// Remove deletes the line entirely regardless of quantity. Removing a
// product that is not present is a no-op.
func (s *Store) Remove(sessionID string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls := s.lines[sessionID]
	for i := range ls {
		if ls[i].Product.ID == productID {
			s.lines[sessionID] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines, sessionID)
}

// Lines returns a copy of the session's lines in insertion order.
func (s *Store) Lines(sessionID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls := s.lines[sessionID]
	out := make([]Line, len(ls))
	copy(out, ls)
	return out
}

// ItemCount is the sum of quantities across lines, derived on demand.
func (s *Store) ItemCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines[sessionID] {
		n += l.Qty
	}
	return n
}
