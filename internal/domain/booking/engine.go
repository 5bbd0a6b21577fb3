package booking

import (
	"strconv"
	"strings"
	"time"

	"hotel-folio/internal/pkg/errs"
	"hotel-folio/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Engine derives booking totals. All methods are pure: the input booking is never
// modified and, on error, the caller keeps its previous value.
type Engine struct {
	calc   PriceCalculator
	places int32
}

func NewEngine(calc PriceCalculator, places int32) *Engine {
	return &Engine{calc: calc, places: places}
}

var defaultEngine = NewEngine(NewNightlyPriceCalculator(2), 2)

// Recompute applies a single field edit with the default two-decimal currency.
func Recompute(b RoomBooking, field Field, raw string) (RoomBooking, error) {
	return defaultEngine.Recompute(b, field, raw)
}

// New opens a booking with the given defaults. When a stay range is supplied the
// nights are taken from it; otherwise the booking starts at one night.
func (e *Engine) New(d Defaults, stay *DateRange) RoomBooking {
	b := RoomBooking{
		id:       uuid.New(),
		roomType: d.RoomType,
		nights:   1,
		mealPlan: d.MealPlan,
		adults:   1,
		rate:     d.Rate,
	}
	if stay != nil {
		b.checkIn = stay.CheckIn()
		b.checkOut = stay.CheckOut()
		b.nights = stay.Nights()
	}
	b.total = e.calc.Total(b.rate, b.nights)
	return b
}

// Recompute parses raw as the new value of field and returns the updated booking.
// total is recomputed only for rate and nights.
func (e *Engine) Recompute(b RoomBooking, field Field, raw string) (RoomBooking, error) {
	if err := b.checkAmounts(); err != nil {
		return b, err
	}
	raw = strings.TrimSpace(raw)
	switch field {
	case FieldRate:
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return b, errs.Invalid(ErrInvalidFieldValue, "rate %q is not a number", raw)
		}
		return e.WithRate(b, rate)
	case FieldNights:
		nights, err := strconv.Atoi(raw)
		if err != nil {
			return b, errs.Invalid(ErrInvalidFieldValue, "nights %q is not an integer", raw)
		}
		return e.WithNights(b, nights)
	case FieldAdults, FieldChildren:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return b, errs.Invalid(ErrInvalidFieldValue, "%s must be a non-negative integer, got %q", field, raw)
		}
		next := b
		if field == FieldAdults {
			next.adults = n
		} else {
			next.children = n
		}
		return next, nil
	case FieldRoomType, FieldMealPlan:
		if raw == "" {
			return b, errs.Invalid(ErrInvalidFieldValue, "%s cannot be empty", field)
		}
		next := b
		if field == FieldRoomType {
			next.roomType = raw
		} else {
			next.mealPlan = raw
		}
		return next, nil
	case FieldCheckIn, FieldCheckOut:
		date, err := parseDate(raw)
		if err != nil {
			return b, err
		}
		return withDate(b, field, date)
	default:
		return b, errs.Invalid(ErrUnknownField, "field %q", field)
	}
}

func (e *Engine) WithRate(b RoomBooking, rate decimal.Decimal) (RoomBooking, error) {
	if !money.InRange(rate) {
		return b, errs.Invalid(ErrInvalidFieldValue, "rate is outside the accepted range")
	}
	if rate.IsNegative() {
		return b, errs.Invalid(ErrInvalidFieldValue, "rate cannot be negative, got %s", rate)
	}
	if !rate.Equal(rate.Round(e.places)) {
		return b, errs.Invalid(ErrInvalidFieldValue, "rate %s has more than %d decimal places", rate, e.places)
	}
	next := b
	next.rate = rate
	next.total = e.calc.Total(next.rate, next.nights)
	return next, nil
}

func (e *Engine) WithNights(b RoomBooking, nights int) (RoomBooking, error) {
	if nights < 1 {
		return b, errs.Invalid(ErrInvalidFieldValue, "nights must be at least 1, got %d", nights)
	}
	if err := b.checkAmounts(); err != nil {
		return b, err
	}
	next := b
	next.nights = nights
	next.total = e.calc.Total(next.rate, next.nights)
	return next, nil
}

// Calculator is used to check the total invariant when a booking is saved.
func (e *Engine) Calculator() PriceCalculator {
	return e.calc
}

// Places is the number of currency minor-unit digits a rate may carry.
func (e *Engine) Places() int32 {
	return e.places
}

func withDate(b RoomBooking, field Field, date time.Time) (RoomBooking, error) {
	next := b
	if field == FieldCheckIn {
		next.checkIn = truncateDate(date)
	} else {
		next.checkOut = truncateDate(date)
	}
	if next.HasDateRange() && !next.checkOut.After(next.checkIn) {
		return b, errs.Invalid(ErrInvalidFieldValue,
			"check-out %s must be after check-in %s",
			next.checkOut.Format(DateLayout), next.checkIn.Format(DateLayout))
	}
	return next, nil
}
