package folio

import (
	"errors"
	"time"

	"hotel-folio/internal/pkg/errs"
	"hotel-folio/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// ErrInvalidChargeRecord is returned when a charge record lacks a date or amount, or the amount is negative.
var ErrInvalidChargeRecord = errors.New("invalid charge record")

type Classification string

const (
	ClassRoom            Classification = "ROOM"
	ClassFoodAndBeverage Classification = "F&B"
	ClassService         Classification = "SERVICE"
)

func (c Classification) String() string {
	return string(c)
}

const (
	OutletFrontDesk  = "Front Desk"
	OutletRestaurant = "Restaurant"
	OutletVarious    = "Various"
)

// ChargeRecord is a charge as recorded by its owning subsystem (billing, POS, services).
// It carries no classification; the aggregator assigns one per source.
// A zero Date or an invalid Amount marks the field as missing.
type ChargeRecord struct {
	Date        time.Time
	Description string
	HSN         string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.NullDecimal
}

// ChargeLineItem is a classified record inside a Ledger. Amount is taken as supplied;
// it is not checked against Rate x Quantity.
type ChargeLineItem struct {
	Date           time.Time
	Description    string
	HSN            string
	Quantity       decimal.Decimal
	Rate           decimal.Decimal
	Amount         decimal.Decimal
	Classification Classification
	Outlet         string
}

// ValidateRecord checks the fields the aggregator relies on.
func ValidateRecord(r ChargeRecord) error {
	if r.Date.IsZero() {
		return errs.Invalid(ErrInvalidChargeRecord, "charge %q has no date", r.Description)
	}
	if !r.Amount.Valid {
		return errs.Invalid(ErrInvalidChargeRecord, "charge %q has no amount", r.Description)
	}
	if !money.InRange(r.Amount.Decimal) || !money.InRange(r.Quantity) || !money.InRange(r.Rate) {
		return errs.Invalid(ErrInvalidChargeRecord, "charge %q has an amount, quantity or rate outside the accepted range", r.Description)
	}
	if r.Amount.Decimal.IsNegative() {
		return errs.Invalid(ErrInvalidChargeRecord, "charge %q has negative amount %s", r.Description, r.Amount.Decimal)
	}
	return nil
}

func tag(r ChargeRecord, class Classification, outlet string) ChargeLineItem {
	return ChargeLineItem{
		Date:           r.Date,
		Description:    r.Description,
		HSN:            r.HSN,
		Quantity:       r.Quantity,
		Rate:           r.Rate,
		Amount:         r.Amount.Decimal,
		Classification: class,
		Outlet:         outlet,
	}
}
