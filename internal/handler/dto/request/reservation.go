package request

import (
	"strings"
	"time"

	"hotel-folio/internal/domain/booking"
	"hotel-folio/internal/pkg/errs"
	"hotel-folio/internal/pkg/money"
	"hotel-folio/internal/pkg/patch"
	"hotel-folio/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	GuestName  string  `json:"guestName" binding:"required,max=120"`
	GuestEmail string  `json:"guestEmail" binding:"omitempty,email"`
	GuestPhone string  `json:"guestPhone" binding:"omitempty,max=32"`
	Arrival    *string `json:"arrival,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Departure  *string `json:"departure,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Note       *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	arrival, err := parseOptionalDate(r.Arrival)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	departure, err := parseOptionalDate(r.Departure)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		Arrival:    arrival,
		Departure:  departure,
		Note:       patch.TrimmedString(r.Note),
	}, nil
}

// BookingPayload is the full editor state of a room booking as held by the client.
type BookingPayload struct {
	ID       uuid.UUID       `json:"id" binding:"required"`
	RoomType string          `json:"roomType" binding:"required"`
	CheckIn  string          `json:"checkIn" binding:"omitempty,datetime=2006-01-02"`
	CheckOut string          `json:"checkOut" binding:"omitempty,datetime=2006-01-02"`
	Nights   int             `json:"nights"`
	MealPlan string          `json:"mealPlan" binding:"required"`
	Adults   int             `json:"adults"`
	Children int             `json:"children"`
	Rate     decimal.Decimal `json:"rate"`
	Total    decimal.Decimal `json:"total"`
}

// ToDomain rebuilds the booking as sent. Field constraints are left to the domain so
// that violations surface as invalid field values.
func (p BookingPayload) ToDomain() (booking.RoomBooking, error) {
	if !money.InRange(p.Rate) || !money.InRange(p.Total) {
		return booking.RoomBooking{}, ErrAmountOutOfRange
	}
	checkIn, err := parseDate(p.CheckIn)
	if err != nil {
		return booking.RoomBooking{}, err
	}
	checkOut, err := parseDate(p.CheckOut)
	if err != nil {
		return booking.RoomBooking{}, err
	}
	return booking.Reconstruct(
		p.ID,
		strings.TrimSpace(p.RoomType),
		checkIn, checkOut,
		p.Nights,
		strings.TrimSpace(p.MealPlan),
		p.Adults, p.Children,
		p.Rate, p.Total,
	), nil
}

type RecomputeBookingRequest struct {
	Booking BookingPayload `json:"booking" binding:"required"`
	Field   string         `json:"field" binding:"required"`
	Value   string         `json:"value"`
}

type AddBookingRequest struct {
	Booking BookingPayload `json:"booking" binding:"required"`
}

type RecordAuditRequest struct {
	Action string  `json:"action" binding:"required,max=100"`
	Note   *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(booking.DateLayout, s)
	if err != nil {
		return time.Time{}, errs.Wrap(err, "invalid date")
	}
	return t, nil
}
