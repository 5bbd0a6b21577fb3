// Package money bounds the decimals accepted as prices and charge amounts.
package money

import "github.com/shopspring/decimal"

const (
	// MaxIntegerDigits allows amounts below one quadrillion.
	MaxIntegerDigits = 15
	// MaxScale is the finest fraction accepted before rounding to currency places.
	MaxScale = 18

	maxCoefficientBits = 128
)

// InRange reports whether d can take part in folio arithmetic. It only inspects the
// coefficient and exponent, so it is safe to call on untrusted input such as "1e2000000000".
func InRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -MaxScale || exp > MaxIntegerDigits {
		return false
	}
	if d.Coefficient().BitLen() > maxCoefficientBits {
		return false
	}
	return int64(d.NumDigits())+exp <= MaxIntegerDigits
}
