package request

import (
	"strings"
	"time"

	"hotel-folio/internal/domain/folio"
	"hotel-folio/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// PostChargeRequest is a charge handed over by the POS or a service desk. Date and amount
// may be absent; the folio rules reject such a record.
type PostChargeRequest struct {
	Date        *time.Time       `json:"date"`
	Description string           `json:"description" binding:"required,max=200"`
	HSN         string           `json:"hsn" binding:"omitempty,max=16"`
	Quantity    *decimal.Decimal `json:"qty" binding:"omitempty,decimal_gte0"`
	Rate        *decimal.Decimal `json:"rate" binding:"omitempty,decimal_gte0"`
	Amount      *decimal.Decimal `json:"amount"`
}

func (r PostChargeRequest) ToDomain() folio.ChargeRecord {
	record := folio.ChargeRecord{
		Date:        patch.Coalesce(r.Date, time.Time{}),
		Description: strings.TrimSpace(r.Description),
		HSN:         strings.TrimSpace(r.HSN),
		Quantity:    patch.Coalesce(r.Quantity, decimal.NewFromInt(1)),
	}
	if r.Amount != nil {
		record.Amount = decimal.NewNullDecimal(*r.Amount)
	}
	record.Rate = patch.Coalesce(r.Rate, record.Amount.Decimal)
	return record
}
