package booking

import (
	"strings"
	"time"

	"hotel-folio/internal/pkg/errs"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

type Field string

const (
	FieldRoomType Field = "room_type"
	FieldCheckIn  Field = "check_in"
	FieldCheckOut Field = "check_out"
	FieldNights   Field = "nights"
	FieldMealPlan Field = "meal_plan"
	FieldAdults   Field = "adults"
	FieldChildren Field = "children"
	FieldRate     Field = "rate"
)

func (f Field) String() string {
	return string(f)
}

func (f Field) IsValid() bool {
	switch f {
	case FieldRoomType, FieldCheckIn, FieldCheckOut, FieldNights,
		FieldMealPlan, FieldAdults, FieldChildren, FieldRate:
		return true
	default:
		return false
	}
}

// AffectsPrice reports whether a change to the field requires the total to be recomputed.
func (f Field) AffectsPrice() bool {
	return f == FieldRate || f == FieldNights
}

func ParseField(s string) (Field, error) {
	f := Field(strings.TrimSpace(s))
	if !f.IsValid() {
		return "", errs.Invalid(ErrUnknownField, "field %q", s)
	}
	return f, nil
}

// DateRange is the stay period; only the calendar date of each bound is kept.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := truncateDate(checkIn), truncateDate(checkOut)
	if !out.After(in) {
		return DateRange{}, errs.Invalid(ErrInvalidFieldValue,
			"check-out %s must be after check-in %s", out.Format(DateLayout), in.Format(DateLayout))
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }

// Nights is the number of calendar days between check-in and check-out.
func (r DateRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

func truncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, errs.Invalid(ErrInvalidFieldValue, "date %q is not in %s form", raw, DateLayout)
	}
	return t, nil
}
