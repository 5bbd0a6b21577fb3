package folio

import (
	"fmt"
	"time"

	"hotel-folio/internal/domain/booking"

	"github.com/shopspring/decimal"
)

// ProjectBooking turns a saved room booking into its single room charge. The charge is
// dated at check-in, or at savedAt when the booking has no date range.
func ProjectBooking(b booking.RoomBooking, roomTypeName, sacCode string, savedAt time.Time) ChargeRecord {
	date := b.CheckIn()
	if date.IsZero() {
		date = savedAt
	}
	unit := "night"
	if b.Nights() != 1 {
		unit = "nights"
	}
	return ChargeRecord{
		Date:        date,
		Description: fmt.Sprintf("Room Charges - %s (%d %s)", roomTypeName, b.Nights(), unit),
		HSN:         sacCode,
		Quantity:    decimal.NewFromInt(int64(b.Nights())),
		Rate:        b.Rate(),
		Amount:      decimal.NewNullDecimal(b.Total()),
	}
}
