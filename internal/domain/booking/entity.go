package booking

import (
	"time"

	"hotel-folio/internal/domain/catalog"
	"hotel-folio/internal/pkg/errs"
	"hotel-folio/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Defaults seed a freshly opened booking editor.
type Defaults struct {
	RoomType string
	MealPlan string
	Rate     decimal.Decimal
}

// RoomBooking is one room-stay line of a reservation. It is a value: every edit produces
// a new RoomBooking and the caller replaces its copy.
//
// nights is authoritative for pricing. checkIn/checkOut are informational once the booking
// exists; editing them never changes nights or total.
type RoomBooking struct {
	id       uuid.UUID
	roomType string
	checkIn  time.Time
	checkOut time.Time
	nights   int
	mealPlan string
	adults   int
	children int
	rate     decimal.Decimal
	total    decimal.Decimal
}

func Reconstruct(
	id uuid.UUID,
	roomType string,
	checkIn, checkOut time.Time,
	nights int,
	mealPlan string,
	adults, children int,
	rate, total decimal.Decimal,
) RoomBooking {
	return RoomBooking{
		id:       id,
		roomType: roomType,
		checkIn:  truncateDate(checkIn),
		checkOut: truncateDate(checkOut),
		nights:   nights,
		mealPlan: mealPlan,
		adults:   adults,
		children: children,
		rate:     rate,
		total:    total,
	}
}

func (b RoomBooking) ID() uuid.UUID          { return b.id }
func (b RoomBooking) RoomType() string       { return b.roomType }
func (b RoomBooking) CheckIn() time.Time     { return b.checkIn }
func (b RoomBooking) CheckOut() time.Time    { return b.checkOut }
func (b RoomBooking) Nights() int            { return b.nights }
func (b RoomBooking) MealPlan() string       { return b.mealPlan }
func (b RoomBooking) Adults() int            { return b.adults }
func (b RoomBooking) Children() int          { return b.children }
func (b RoomBooking) Rate() decimal.Decimal  { return b.rate }
func (b RoomBooking) Total() decimal.Decimal { return b.total }

func (b RoomBooking) Occupancy() int {
	return b.adults + b.children
}

// HasDateRange reports whether both stay dates are set.
func (b RoomBooking) HasDateRange() bool {
	return !b.checkIn.IsZero() && !b.checkOut.IsZero()
}

// RangeNights is the length of the date range, or 0 when the range is incomplete.
// It can disagree with Nights; the booking does not reconcile the two.
func (b RoomBooking) RangeNights() int {
	if !b.HasDateRange() {
		return 0
	}
	return int(b.checkOut.Sub(b.checkIn).Hours() / 24)
}

// Validate runs the checks applied when a booking is saved to a reservation.
func (b RoomBooking) Validate(cat *catalog.Catalog, calc PriceCalculator) error {
	if b.id == uuid.Nil {
		return errs.Invalid(ErrInvalidFieldValue, "booking has no identifier")
	}
	rt, err := cat.RoomType(b.roomType)
	if err != nil {
		return errs.Mark(err, ErrInvalidFieldValue)
	}
	if _, err := cat.MealPlan(b.mealPlan); err != nil {
		return errs.Mark(err, ErrInvalidFieldValue)
	}
	if b.nights < 1 {
		return errs.Invalid(ErrInvalidFieldValue, "nights must be at least 1, got %d", b.nights)
	}
	if b.adults < 0 || b.children < 0 {
		return errs.Invalid(ErrInvalidFieldValue, "guest counts cannot be negative")
	}
	if b.Occupancy() > rt.MaxOccupancy {
		return errs.Invalid(ErrInvalidFieldValue,
			"%d guests exceed %s occupancy of %d", b.Occupancy(), rt.Name, rt.MaxOccupancy)
	}
	if b.HasDateRange() && !b.checkOut.After(b.checkIn) {
		return errs.Invalid(ErrInvalidFieldValue, "check-out must be after check-in")
	}
	if err := b.checkAmounts(); err != nil {
		return err
	}
	if b.rate.IsNegative() {
		return errs.Invalid(ErrInvalidFieldValue, "rate cannot be negative")
	}
	if want := calc.Total(b.rate, b.nights); !b.total.Equal(want) {
		return errs.Invalid(ErrInvalidFieldValue, "total %s does not match rate x nights %s", b.total, want)
	}
	return nil
}

// checkAmounts keeps rate and total small enough for pricing arithmetic.
func (b RoomBooking) checkAmounts() error {
	if !money.InRange(b.rate) {
		return errs.Invalid(ErrInvalidFieldValue, "rate is outside the accepted range")
	}
	if !money.InRange(b.total) {
		return errs.Invalid(ErrInvalidFieldValue, "total is outside the accepted range")
	}
	return nil
}
