package folio

import (
	"fmt"
	"slices"

	"hotel-folio/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Ledger is an immutable, date-ordered snapshot of a folio's charges.
type Ledger struct {
	items      []ChargeLineItem
	grandTotal decimal.Decimal
}

type Subtotal struct {
	Classification Classification
	Count          int
	Amount         decimal.Decimal
}

type source struct {
	class   Classification
	outlet  string
	records []ChargeRecord
}

// Aggregate merges the three charge sources into one ledger. Items are tagged per source,
// concatenated room, F&B, service, then stably sorted by date so that equal timestamps
// keep that source order. Any invalid record fails the whole call.
func Aggregate(room, fb, service []ChargeRecord) (Ledger, error) {
	sources := []source{
		{class: ClassRoom, outlet: OutletFrontDesk, records: room},
		{class: ClassFoodAndBeverage, outlet: OutletRestaurant, records: fb},
		{class: ClassService, outlet: OutletVarious, records: service},
	}

	items := make([]ChargeLineItem, 0, len(room)+len(fb)+len(service))
	total := decimal.Zero
	for _, src := range sources {
		for i, r := range src.records {
			if err := ValidateRecord(r); err != nil {
				return Ledger{}, errs.Wrap(err, fmt.Sprintf("%s charge #%d", src.class, i+1))
			}
			items = append(items, tag(r, src.class, src.outlet))
			total = total.Add(r.Amount.Decimal)
		}
	}

	slices.SortStableFunc(items, func(a, b ChargeLineItem) int {
		return a.Date.Compare(b.Date)
	})

	return Ledger{items: items, grandTotal: total}, nil
}

func (l Ledger) Items() []ChargeLineItem {
	return slices.Clone(l.items)
}

func (l Ledger) Len() int {
	return len(l.items)
}

func (l Ledger) GrandTotal() decimal.Decimal {
	return l.grandTotal
}

// Subtotals returns one entry per classification in ROOM, F&B, SERVICE order, including empty ones.
func (l Ledger) Subtotals() []Subtotal {
	out := []Subtotal{
		{Classification: ClassRoom, Amount: decimal.Zero},
		{Classification: ClassFoodAndBeverage, Amount: decimal.Zero},
		{Classification: ClassService, Amount: decimal.Zero},
	}
	for _, it := range l.items {
		for i := range out {
			if out[i].Classification == it.Classification {
				out[i].Count++
				out[i].Amount = out[i].Amount.Add(it.Amount)
			}
		}
	}
	return out
}
