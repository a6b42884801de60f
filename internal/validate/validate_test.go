package validate_test

import (
	"strings"
	"testing"

	"comanda/internal/validate"
)

func TestName(t *testing.T) {
	if _, ok := validate.Name("   "); ok {
		t.Fatal("blank name accepted")
	}
	if _, ok := validate.Name(strings.Repeat("x", 101)); ok {
		t.Fatal("overlong name accepted")
	}
	got, ok := validate.Name("  Ana Pérez ")
	if !ok || got != "Ana Pérez" {
		t.Fatalf("want trimmed name, got %q %v", got, ok)
	}
}

func TestPhone(t *testing.T) {
	for _, good := range []string{"3001234567", "+57 (1) 234-5678"} {
		if _, ok := validate.Phone(good); !ok {
			t.Fatalf("%q rejected", good)
		}
	}
	for _, bad := range []string{"", "12345", "abc1234567", "12345678901234567890123"} {
		if _, ok := validate.Phone(bad); ok {
			t.Fatalf("%q accepted", bad)
		}
	}
}

func TestIdentNumber(t *testing.T) {
	if _, ok := validate.IdentNumber("1020304050"); !ok {
		t.Fatal("plain cedula rejected")
	}
	if _, ok := validate.IdentNumber("AB-123"); !ok {
		t.Fatal("passport-style id rejected")
	}
	for _, bad := range []string{"", "12", "12 34", "número"} {
		if _, ok := validate.IdentNumber(bad); ok {
			t.Fatalf("%q accepted", bad)
		}
	}
}

func TestQtyClamps(t *testing.T) {
	cases := map[string]int{"3": 3, "0": 1, "-2": 1, "abc": 1, "999": 50}
	for in, want := range cases {
		if got := validate.Qty(in); got != want {
			t.Fatalf("Qty(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestPriceAndTaxRate(t *testing.T) {
	if _, ok := validate.Price("0"); ok {
		t.Fatal("zero price accepted")
	}
	if v, ok := validate.Price(" 25000 "); !ok || v != 25000 {
		t.Fatalf("price parse: %v %v", v, ok)
	}
	if v, ok := validate.TaxRate("0"); !ok || v != 0 {
		t.Fatal("zero IVA should be allowed")
	}
	if _, ok := validate.TaxRate("-1"); ok {
		t.Fatal("negative IVA accepted")
	}
}

func TestTableNumberAndID(t *testing.T) {
	if _, ok := validate.TableNumber("0"); ok {
		t.Fatal("table 0 accepted")
	}
	if n, ok := validate.TableNumber(" 7 "); !ok || n != 7 {
		t.Fatalf("table parse: %v %v", n, ok)
	}
	if _, ok := validate.ID("-5"); ok {
		t.Fatal("negative id accepted")
	}
	if id, ok := validate.ID("42"); !ok || id != 42 {
		t.Fatalf("id parse: %v %v", id, ok)
	}
}
