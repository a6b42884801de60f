package cart_test

import (
	"testing"

	"comanda/internal/cart"
	"comanda/internal/domain"
)

func prod(id int64, price float64) domain.Product {
	return domain.Product{ID: id, Name: "p", Price: price, IVA: 19}
}

func TestAddMergesDuplicate(t *testing.T) {
	s := cart.NewStore()
	s.Add("sid", prod(1, 25000))
	s.Add("sid", prod(1, 25000))

	ls := s.Lines("sid")
	if len(ls) != 1 {
		t.Fatalf("want 1 line, got %d", len(ls))
	}
	if ls[0].Qty != 2 {
		t.Fatalf("want qty 2, got %d", ls[0].Qty)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := cart.NewStore()
	s.Add("sid", prod(1, 25000))
	s.Remove("sid", 99)

	if n := len(s.Lines("sid")); n != 1 {
		t.Fatalf("want 1 line, got %d", n)
	}
}

func TestSetQuantityAndRemove(t *testing.T) {
	s := cart.NewStore()
	s.Add("sid", prod(1, 25000))
	s.Add("sid", prod(2, 18000))

	s.SetQuantity("sid", 2, 5)
	if s.ItemCount("sid") != 6 {
		t.Fatalf("want item count 6, got %d", s.ItemCount("sid"))
	}

	s.Remove("sid", 1)
	ls := s.Lines("sid")
	if len(ls) != 1 || ls[0].Product.ID != 2 {
		t.Fatalf("unexpected lines after remove: %+v", ls)
	}

	// SetQuantity for a missing product does nothing.
	s.SetQuantity("sid", 1, 3)
	if len(s.Lines("sid")) != 1 {
		t.Fatal("missing product should not reappear")
	}
}

func TestClearAndSessionIsolation(t *testing.T) {
	s := cart.NewStore()
	s.Add("a", prod(1, 25000))
	s.Add("b", prod(1, 25000))

	s.Clear("a")
	if len(s.Lines("a")) != 0 {
		t.Fatal("cart a should be empty")
	}
	if len(s.Lines("b")) != 1 {
		t.Fatal("cart b should be untouched")
	}
	if s.ItemCount("a") != 0 {
		t.Fatal("empty cart should count 0 items")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	s := cart.NewStore()
	s.Add("sid", prod(1, 25000))

	ls := s.Lines("sid")
	ls[0].Qty = 40
	if got := s.Lines("sid")[0].Qty; got != 1 {
		t.Fatalf("store mutated through returned slice: qty=%d", got)
	}
}
