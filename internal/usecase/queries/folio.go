package queries

import (
	"context"

	"hotel-folio/internal/domain/audit"
	"hotel-folio/internal/domain/catalog"
	"hotel-folio/internal/domain/folio"
	"hotel-folio/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FolioView is everything the final-bill screen shows for one reservation.
type FolioView struct {
	Reservation *ReservationView
	Items       []folio.ChargeLineItem
	Subtotals   []folio.Subtotal
	GrandTotal  decimal.Decimal
	AuditTrail  []audit.Rendered
}

type FolioQueries interface {
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetFolio(ctx context.Context, id uuid.UUID) (*FolioView, error)
	RoomTypes() []catalog.RoomType
	MealPlans() []catalog.MealPlan
}

type folioQueriesImpl struct {
	reservationQueriesImpl
	roomSACCode string
}

func NewFolioQueries(store FolioReadStore, cat *catalog.Catalog, roomSACCode string) FolioQueries {
	return &folioQueriesImpl{
		reservationQueriesImpl: reservationQueriesImpl{store: store, catalog: cat},
		roomSACCode:            roomSACCode,
	}
}

func (q *folioQueriesImpl) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.loadReservation(ctx, id)
}

func (q *folioQueriesImpl) GetFolio(ctx context.Context, id uuid.UUID) (*FolioView, error) {
	res, err := q.loadReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	roomCharges := make([]folio.ChargeRecord, 0, len(res.Bookings))
	for _, bv := range res.Bookings {
		roomCharges = append(roomCharges, folio.ProjectBooking(bv.Booking, bv.RoomTypeName, q.roomSACCode, bv.SavedAt))
	}

	fbCharges, err := q.charges(ctx, id, shared.SourceFoodAndBeverage)
	if err != nil {
		return nil, err
	}
	serviceCharges, err := q.charges(ctx, id, shared.SourceService)
	if err != nil {
		return nil, err
	}

	ledger, err := folio.Aggregate(roomCharges, fbCharges, serviceCharges)
	if err != nil {
		return nil, err
	}

	log, err := q.store.AuditLog(ctx, id)
	if err != nil {
		return nil, mapReadErr(err)
	}

	return &FolioView{
		Reservation: res,
		Items:       ledger.Items(),
		Subtotals:   ledger.Subtotals(),
		GrandTotal:  ledger.GrandTotal(),
		AuditTrail:  audit.Render(log.Entries()),
	}, nil
}

func (q *folioQueriesImpl) RoomTypes() []catalog.RoomType {
	return q.catalog.RoomTypes()
}

func (q *folioQueriesImpl) MealPlans() []catalog.MealPlan {
	return q.catalog.MealPlans()
}

func (q *folioQueriesImpl) charges(ctx context.Context, id uuid.UUID, source shared.ChargeSource) ([]folio.ChargeRecord, error) {
	posted, err := q.store.ChargesByReservation(ctx, id, source)
	if err != nil {
		return nil, mapReadErr(err)
	}
	out := make([]folio.ChargeRecord, len(posted))
	for i, p := range posted {
		out[i] = p.Record
	}
	return out, nil
}
