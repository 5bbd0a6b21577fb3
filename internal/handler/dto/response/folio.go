package response

import (
	"time"

	"hotel-folio/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// ChargeLineResponse is one ledger line. Date is the full time the charge was incurred.
type ChargeLineResponse struct {
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	HSN            string          `json:"hsn,omitempty"`
	Quantity       decimal.Decimal `json:"qty"`
	Rate           decimal.Decimal `json:"rate"`
	Amount         decimal.Decimal `json:"amount"`
	Classification string          `json:"classification"`
	Outlet         string          `json:"outlet"`
}

type SubtotalResponse struct {
	Classification string          `json:"classification"`
	Count          int             `json:"count"`
	Amount         decimal.Decimal `json:"amount"`
}

type AuditEntryResponse struct {
	Category string    `json:"category"`
	Action   string    `json:"action"`
	By       string    `json:"by"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes,omitempty"`
}

type FolioResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Items       []ChargeLineResponse `json:"items"`
	Subtotals   []SubtotalResponse   `json:"subtotals"`
	GrandTotal  decimal.Decimal      `json:"grandTotal"`
	AuditTrail  []AuditEntryResponse `json:"auditTrail"`
}

func FromFolioView(v *queries.FolioView) (*FolioResponse, error) {
	res, err := FromReservationView(v.Reservation)
	if err != nil {
		return nil, err
	}

	items := make([]ChargeLineResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = ChargeLineResponse{
			Date:           it.Date,
			Description:    it.Description,
			HSN:            it.HSN,
			Quantity:       it.Quantity,
			Rate:           it.Rate,
			Amount:         it.Amount,
			Classification: string(it.Classification),
			Outlet:         it.Outlet,
		}
	}

	subtotals := make([]SubtotalResponse, len(v.Subtotals))
	for i, s := range v.Subtotals {
		subtotals[i] = SubtotalResponse{
			Classification: string(s.Classification),
			Count:          s.Count,
			Amount:         s.Amount,
		}
	}

	trail := make([]AuditEntryResponse, len(v.AuditTrail))
	for i, e := range v.AuditTrail {
		trail[i] = AuditEntryResponse{
			Category: string(e.Category),
			Action:   e.Action,
			By:       e.Actor,
			Date:     e.At,
			Notes:    e.Note,
		}
	}

	return &FolioResponse{
		Reservation: res,
		Items:       items,
		Subtotals:   subtotals,
		GrandTotal:  v.GrandTotal,
		AuditTrail:  trail,
	}, nil
}
