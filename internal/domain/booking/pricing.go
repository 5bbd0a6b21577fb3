package booking

import "github.com/shopspring/decimal"

type PriceCalculator interface {
	Total(rate decimal.Decimal, nights int) decimal.Decimal
}

// NightlyPriceCalculator charges the nightly rate once per night.
type NightlyPriceCalculator struct {
	Places int32
}

func NewNightlyPriceCalculator(places int32) *NightlyPriceCalculator {
	return &NightlyPriceCalculator{Places: places}
}

func (pc *NightlyPriceCalculator) Total(rate decimal.Decimal, nights int) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(nights))).Round(pc.Places)
}
