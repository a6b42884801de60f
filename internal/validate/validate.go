package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rePhone = regexp.MustCompile(`^[0-9 +().-]{7,20}$`)
	reIdent = regexp.MustCompile(`^[A-Za-z0-9-]{3,20}$`)
)

// Name validates a displayable person or product name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// IdentNumber validates an identification document number.
func IdentNumber(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reIdent.MatchString(s)
}

// TableNumber parses a positive dining-room table number.
func TableNumber(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Qty parses a cart quantity, clamped to [1, 50].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Price parses a positive product price.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// TaxRate parses a non-negative IVA percentage.
func TaxRate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Minutes parses a positive preparation time.
func Minutes(s string) (int, bool) { return positiveInt(s) }

// Capacity parses a positive seat count.
func Capacity(s string) (int, bool) { return positiveInt(s) }

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// ID parses a positive integer row id.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
