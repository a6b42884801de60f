// Package pricing computes order totals from cart lines. Every function is
// pure; rounding and locale formatting are left to the templates.
package pricing

import "comanda/internal/cart"

// ConsumptionTaxRate is the flat surcharge applied to the subtotal,
// separate from each product's own IVA.
const ConsumptionTaxRate = 0.08

type Summary struct {
	Subtotal       float64
	TaxTotal       float64
	ConsumptionTax float64
	Total          float64
}

func Subtotal(lines []cart.Line) float64 {
	t := 0.0
	for _, l := range lines {
		t += l.Product.Price * float64(l.Qty)
	}
	return t
}

// TaxTotal applies each product's IVA percentage to its own lines only.
func TaxTotal(lines []cart.Line) float64 {
	t := 0.0
	for _, l := range lines {
		t += l.Product.Price * (l.Product.IVA / 100) * float64(l.Qty)
	}
	return t
}

func ConsumptionTax(lines []cart.Line) float64 {
	return Subtotal(lines) * ConsumptionTaxRate
}

func Total(lines []cart.Line) float64 {
	return Subtotal(lines) + TaxTotal(lines) + ConsumptionTax(lines)
}

func Summarize(lines []cart.Line) Summary {
	s := Subtotal(lines)
	tax := TaxTotal(lines)
	cons := s * ConsumptionTaxRate
	return Summary{Subtotal: s, TaxTotal: tax, ConsumptionTax: cons, Total: s + tax + cons}
}

// PriceWithTax is the per-item display price: price × (1 + IVA/100).
func PriceWithTax(price, ratePercent float64) float64 {
	return price * (1 + ratePercent/100)
}

// UnitTax is the IVA amount for one unit, snapshotted onto order lines.
func UnitTax(price, ratePercent float64) float64 {
	return price * (ratePercent / 100)
}
