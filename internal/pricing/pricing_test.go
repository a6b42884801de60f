package pricing_test

import (
	"math"
	"testing"

	"comanda/internal/cart"
	"comanda/internal/domain"
	"comanda/internal/pricing"
)

func line(price, iva float64, qty int) cart.Line {
	return cart.Line{Product: domain.Product{ID: 1, Price: price, IVA: iva}, Qty: qty}
}

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestKnownScenario(t *testing.T) {
	// 2 × 25000 at 19% IVA: subtotal 50000, IVA 9500, consumo 4000, total 63500.
	lines := []cart.Line{line(25000, 19, 2)}

	sum := pricing.Summarize(lines)
	if !almost(sum.Subtotal, 50000) {
		t.Fatalf("subtotal: want 50000, got %v", sum.Subtotal)
	}
	if !almost(sum.TaxTotal, 9500) {
		t.Fatalf("tax: want 9500, got %v", sum.TaxTotal)
	}
	if !almost(sum.ConsumptionTax, 4000) {
		t.Fatalf("consumption tax: want 4000, got %v", sum.ConsumptionTax)
	}
	if !almost(sum.Total, 63500) {
		t.Fatalf("total: want 63500, got %v", sum.Total)
	}
}

func TestTotalIdentity(t *testing.T) {
	carts := [][]cart.Line{
		{},
		{line(25000, 19, 2)},
		{line(18000, 19, 1), line(32000, 5, 3)},
		{line(22000, 0, 4), line(28000, 19, 2), line(10, 8, 7)},
	}
	for _, lines := range carts {
		sub := pricing.Subtotal(lines)
		tax := pricing.TaxTotal(lines)
		cons := pricing.ConsumptionTax(lines)
		if !almost(cons, sub*0.08) {
			t.Fatalf("consumption tax should be 8%% of subtotal: sub=%v cons=%v", sub, cons)
		}
		if got := pricing.Total(lines); !almost(got, sub+tax+cons) {
			t.Fatalf("total identity broken: %v != %v", got, sub+tax+cons)
		}
	}
}

func TestPerProductRateAppliesPerLine(t *testing.T) {
	// Each product's own rate, not a blended one.
	lines := []cart.Line{line(10000, 19, 1), line(10000, 5, 1)}
	if got := pricing.TaxTotal(lines); !almost(got, 1900+500) {
		t.Fatalf("want 2400, got %v", got)
	}
}

func TestEmptyCartIsAllZeros(t *testing.T) {
	sum := pricing.Summarize(nil)
	if sum.Subtotal != 0 || sum.TaxTotal != 0 || sum.ConsumptionTax != 0 || sum.Total != 0 {
		t.Fatalf("empty cart should be zero everywhere: %+v", sum)
	}
}

func TestPriceWithTax(t *testing.T) {
	if got := pricing.PriceWithTax(25000, 19); !almost(got, 29750) {
		t.Fatalf("want 29750, got %v", got)
	}
	if got := pricing.UnitTax(25000, 19); !almost(got, 4750) {
		t.Fatalf("want 4750, got %v", got)
	}
}
