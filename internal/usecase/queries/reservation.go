package queries

import (
	"context"
	"time"

	"hotel-folio/internal/domain/audit"
	"hotel-folio/internal/domain/booking"
	"hotel-folio/internal/domain/catalog"
	"hotel-folio/internal/infra"
	"hotel-folio/internal/pkg/errs"
	"hotel-folio/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrReservationQueryFail = errs.New("reservation query failed")
)

// Read models (DTO for read side)
type ReservationView struct {
	ID         uuid.UUID
	GuestName  string
	GuestEmail string
	GuestPhone string
	Arrival    *time.Time
	Departure  *time.Time
	Note       string
	CreatedBy  string
	CreatedAt  time.Time
	Bookings   []BookingView
}

type BookingView struct {
	Booking      booking.RoomBooking
	RoomTypeName string
	MealPlanName string
	SavedAt      time.Time
	SavedBy      string
}

type FolioReadStore interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error)
	BookingsByReservation(ctx context.Context, id uuid.UUID) ([]shared.StoredBooking, error)
	ChargesByReservation(ctx context.Context, id uuid.UUID, source shared.ChargeSource) ([]shared.PostedCharge, error)
	AuditLog(ctx context.Context, id uuid.UUID) (audit.Log, error)
}

type reservationQueriesImpl struct {
	store   FolioReadStore
	catalog *catalog.Catalog
}

func (q *reservationQueriesImpl) loadReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	snap, err := q.store.ReservationByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err)
	}
	stored, err := q.store.BookingsByReservation(ctx, id)
	if err != nil {
		return nil, mapReadErr(err)
	}

	view := &ReservationView{
		ID:         snap.ID,
		GuestName:  snap.GuestName,
		GuestEmail: snap.GuestEmail,
		GuestPhone: snap.GuestPhone,
		Arrival:    snap.Arrival,
		Departure:  snap.Departure,
		Note:       snap.Note,
		CreatedBy:  snap.CreatedBy,
		CreatedAt:  snap.CreatedAt,
		Bookings:   make([]BookingView, 0, len(stored)),
	}
	for _, sb := range stored {
		view.Bookings = append(view.Bookings, BookingView{
			Booking:      sb.Booking,
			RoomTypeName: q.roomTypeName(sb.Booking.RoomType()),
			MealPlanName: q.mealPlanName(sb.Booking.MealPlan()),
			SavedAt:      sb.SavedAt,
			SavedBy:      sb.SavedBy,
		})
	}
	return view, nil
}

// Catalog entries can be retired after a booking was saved; fall back to the stored code.
func (q *reservationQueriesImpl) roomTypeName(code string) string {
	if rt, err := q.catalog.RoomType(code); err == nil {
		return rt.Name
	}
	return code
}

func (q *reservationQueriesImpl) mealPlanName(code string) string {
	if mp, err := q.catalog.MealPlan(code); err == nil {
		return mp.Name
	}
	return code
}

func mapReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReservationNotFound)
	}
	return errs.Mark(err, ErrReservationQueryFail)
}
