package shared

import (
	"context"

	"hotel-folio/internal/domain/audit"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn against staged writes; they are applied only when fn returns nil.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	CreateReservation(ctx context.Context, snap ReservationSnapshot) error
	AddBooking(ctx context.Context, reservationID uuid.UUID, b StoredBooking) error
	AddCharge(ctx context.Context, reservationID uuid.UUID, c PostedCharge) error
	AppendAudit(ctx context.Context, reservationID uuid.UUID, e audit.Entry) error
}
