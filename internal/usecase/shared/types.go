package shared

import (
	"time"

	"hotel-folio/internal/domain/booking"
	"hotel-folio/internal/domain/folio"

	"github.com/google/uuid"
)

type ChargeSource string

const (
	SourceFoodAndBeverage ChargeSource = "fnb"
	SourceService         ChargeSource = "service"
)

func (s ChargeSource) IsValid() bool {
	return s == SourceFoodAndBeverage || s == SourceService
}

func (s ChargeSource) Label() string {
	switch s {
	case SourceFoodAndBeverage:
		return "F&B"
	case SourceService:
		return "Service"
	default:
		return string(s)
	}
}

// ReservationSnapshot is the stored guest-facing part of a reservation.
type ReservationSnapshot struct {
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

// StoredBooking is a finalized room booking and the moment it was added.
type StoredBooking struct {
	Booking booking.RoomBooking
	SavedAt time.Time
	SavedBy string
}

// PostedCharge is an F&B or service charge handed over by its owning subsystem.
type PostedCharge struct {
	ID       uuid.UUID
	Source   ChargeSource
	Record   folio.ChargeRecord
	PostedBy string
	PostedAt time.Time
}
