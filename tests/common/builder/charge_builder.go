//go:build unit || e2e

package builder

import (
	"time"

	"hotel-folio/internal/domain/folio"
	reqdto "hotel-folio/internal/handler/dto/request"
	"hotel-folio/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ChargeBuilder struct {
	Date        time.Time
	Description string
	HSN         string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	// nil leaves the amount missing
	Amount   *decimal.Decimal
	Source   shared.ChargeSource
	PostedBy string
}

func NewChargeBuilder() *ChargeBuilder {
	amount := decimal.NewFromInt(500)
	return &ChargeBuilder{
		Date:        time.Date(2024, 1, 2, 20, 30, 0, 0, time.UTC),
		Description: "Dinner",
		HSN:         "996331",
		Quantity:    decimal.NewFromInt(1),
		Rate:        amount,
		Amount:      &amount,
		Source:      shared.SourceFoodAndBeverage,
		PostedBy:    "Restaurant POS",
	}
}

func (b *ChargeBuilder) With(mutate func(*ChargeBuilder)) *ChargeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ChargeBuilder) BuildRecord() folio.ChargeRecord {
	r := folio.ChargeRecord{
		Date:        b.Date,
		Description: b.Description,
		HSN:         b.HSN,
		Quantity:    b.Quantity,
		Rate:        b.Rate,
	}
	if b.Amount != nil {
		r.Amount = decimal.NewNullDecimal(*b.Amount)
	}
	return r
}

func (b *ChargeBuilder) BuildPosted() shared.PostedCharge {
	return shared.PostedCharge{
		ID:       uuid.New(),
		Source:   b.Source,
		Record:   b.BuildRecord(),
		PostedBy: b.PostedBy,
		PostedAt: b.Date,
	}
}

func (b *ChargeBuilder) BuildRequestDTO() reqdto.PostChargeRequest {
	req := reqdto.PostChargeRequest{
		Description: b.Description,
		HSN:         b.HSN,
		Quantity:    &b.Quantity,
		Rate:        &b.Rate,
		Amount:      b.Amount,
	}
	if !b.Date.IsZero() {
		d := b.Date
		req.Date = &d
	}
	return req
}

// Fluent builder methods
func (b *ChargeBuilder) WithDate(d time.Time) *ChargeBuilder {
	b.Date = d
	return b
}

func (b *ChargeBuilder) WithDescription(desc string) *ChargeBuilder {
	b.Description = desc
	return b
}

func (b *ChargeBuilder) WithAmount(amount string) *ChargeBuilder {
	a := decimal.RequireFromString(amount)
	b.Amount = &a
	b.Rate = a
	return b
}

func (b *ChargeBuilder) WithoutAmount() *ChargeBuilder {
	b.Amount = nil
	return b
}

func (b *ChargeBuilder) AsService() *ChargeBuilder {
	b.Source = shared.SourceService
	b.Description = "Laundry"
	b.HSN = "999712"
	b.PostedBy = "Housekeeping"
	return b
}
