//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hotel-folio/internal/handler/dto/request"
	"hotel-folio/internal/usecase/commands"
	"hotel-folio/internal/usecase/queries"
	"hotel-folio/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	GuestName  string
	GuestEmail string
	GuestPhone string
	Arrival    *time.Time
	Departure  *time.Time
	Note       string
	CreatedBy  string
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	arrival := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	departure := arrival.AddDate(0, 0, 3)
	return &ReservationBuilder{
		ID:         uuid.New(),
		GuestName:  "Priya Raman",
		GuestEmail: "priya@example.com",
		GuestPhone: "+91-98400-00000",
		Arrival:    &arrival,
		Departure:  &departure,
		Note:       "Late arrival",
		CreatedBy:  "Front Desk Agent",
		CreatedAt:  arrival.Add(-72 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		Arrival:    b.Arrival,
		Departure:  b.Departure,
		Note:       b.Note,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
	}
	if b.Arrival != nil {
		s := b.Arrival.Format(time.DateOnly)
		req.Arrival = &s
	}
	if b.Departure != nil {
		s := b.Departure.Format(time.DateOnly)
		req.Departure = &s
	}
	if b.Note != "" {
		note := b.Note
		req.Note = &note
	}
	return req
}

func (b *ReservationBuilder) BuildSnapshot() shared.ReservationSnapshot {
	return shared.ReservationSnapshot{
		ID:         b.ID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		Arrival:    b.Arrival,
		Departure:  b.Departure,
		Note:       b.Note,
		CreatedBy:  b.CreatedBy,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildView(bookings ...queries.BookingView) *queries.ReservationView {
	if bookings == nil {
		bookings = []queries.BookingView{}
	}
	return &queries.ReservationView{
		ID:         b.ID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		Arrival:    b.Arrival,
		Departure:  b.Departure,
		Note:       b.Note,
		CreatedBy:  b.CreatedBy,
		CreatedAt:  b.CreatedAt,
		Bookings:   bookings,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithGuestName(name string) *ReservationBuilder {
	b.GuestName = name
	return b
}

func (b *ReservationBuilder) WithStay(arrival, departure time.Time) *ReservationBuilder {
	b.Arrival = &arrival
	b.Departure = &departure
	return b
}

func (b *ReservationBuilder) WithoutStay() *ReservationBuilder {
	b.Arrival = nil
	b.Departure = nil
	return b
}
