package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hotel-folio/internal/domain/audit"
	"hotel-folio/internal/domain/booking"
	"hotel-folio/internal/domain/catalog"
	"hotel-folio/internal/domain/folio"
	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/infra"
	"hotel-folio/internal/pkg/clock"
	"hotel-folio/internal/pkg/errs"
	"hotel-folio/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrInvalidGuest         = errs.New("invalid guest details")
	ErrDuplicateBooking     = errs.New("booking already added")
	ErrUnknownChargeSource  = errs.New("unknown charge source")
	ErrOperatorNotPermitted = errs.New("operator not permitted to modify folios")
	ErrStoreOperationFailed = errs.New("store operation failed")
)

type CreateReservationInput struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	Arrival    *time.Time
	Departure  *time.Time
	Note       string
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput, actor operator.Operator) (uuid.UUID, error)
	DraftBooking(ctx context.Context, reservationID uuid.UUID) (booking.RoomBooking, error)
	RecomputeBooking(ctx context.Context, b booking.RoomBooking, field booking.Field, value string) (booking.RoomBooking, error)
	AddBooking(ctx context.Context, reservationID uuid.UUID, b booking.RoomBooking, actor operator.Operator) error
	PostCharge(ctx context.Context, reservationID uuid.UUID, source shared.ChargeSource, record folio.ChargeRecord, actor operator.Operator) (uuid.UUID, error)
	RecordAudit(ctx context.Context, reservationID uuid.UUID, action, note string, actor operator.Operator) error
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	catalog  *catalog.Catalog
	engine   *booking.Engine
	defaults booking.Defaults
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	cat *catalog.Catalog,
	engine *booking.Engine,
	defaults booking.Defaults,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		catalog:  cat,
		engine:   engine,
		defaults: defaults,
		clock:    clk,
		logger:   logger,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	in CreateReservationInput,
	actor operator.Operator,
) (uuid.UUID, error) {
	if err := requireWriter(actor); err != nil {
		return uuid.Nil, err
	}

	name := strings.TrimSpace(in.GuestName)
	if name == "" {
		return uuid.Nil, errs.Mark(errs.New("guest name is required"), ErrInvalidGuest)
	}
	if in.Arrival != nil && in.Departure != nil {
		if _, err := booking.NewDateRange(*in.Arrival, *in.Departure); err != nil {
			return uuid.Nil, errs.Mark(err, ErrInvalidGuest)
		}
	}

	now := r.clock.Now()
	snap := shared.ReservationSnapshot{
		ID:         uuid.New(),
		GuestName:  name,
		GuestEmail: strings.TrimSpace(in.GuestEmail),
		GuestPhone: strings.TrimSpace(in.GuestPhone),
		Arrival:    in.Arrival,
		Departure:  in.Departure,
		Note:       strings.TrimSpace(in.Note),
		CreatedBy:  actor.Name(),
		CreatedAt:  now,
	}

	entry, err := audit.NewEntry("Reservation Created", actor.Name(), now, "Guest: "+name)
	if err != nil {
		return uuid.Nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.CreateReservation(ctx, snap); derr != nil {
			return derr
		}
		return tx.AppendAudit(ctx, snap.ID, entry)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	r.logger.Info("reservation created", "reservation_id", snap.ID, "operator", actor.Name())
	return snap.ID, nil
}

func (r *reservationUseCaseImpl) DraftBooking(ctx context.Context, reservationID uuid.UUID) (booking.RoomBooking, error) {
	var stay *booking.DateRange
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.ReservationByID(ctx, reservationID)
		if derr != nil {
			return derr
		}
		if snap.Arrival != nil && snap.Departure != nil {
			rng, rerr := booking.NewDateRange(*snap.Arrival, *snap.Departure)
			if rerr == nil {
				stay = &rng
			}
		}
		return nil
	})
	if err != nil {
		return booking.RoomBooking{}, r.mapStoreErr(err)
	}
	return r.engine.New(r.defaults, stay), nil
}

func (r *reservationUseCaseImpl) RecomputeBooking(
	_ context.Context,
	b booking.RoomBooking,
	field booking.Field,
	value string,
) (booking.RoomBooking, error) {
	next, err := r.engine.Recompute(b, field, value)
	if err != nil {
		r.logger.Warn("booking edit rejected", "booking_id", b.ID(), "field", field, "error", err.Error())
		return b, err
	}
	return next, nil
}

func (r *reservationUseCaseImpl) AddBooking(
	ctx context.Context,
	reservationID uuid.UUID,
	b booking.RoomBooking,
	actor operator.Operator,
) error {
	if err := requireWriter(actor); err != nil {
		return err
	}
	if err := b.Validate(r.catalog, r.engine.Calculator()); err != nil {
		r.logger.Warn("booking rejected", "reservation_id", reservationID, "error", err.Error())
		return err
	}

	now := r.clock.Now()
	note := fmt.Sprintf("%s, %s, %d night(s) @ %s = %s",
		b.RoomType(), b.MealPlan(), b.Nights(), b.Rate().StringFixed(r.engine.Places()), b.Total().StringFixed(r.engine.Places()))
	entry, err := audit.NewEntry("Room Booking Created", actor.Name(), now, note)
	if err != nil {
		return err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.AddBooking(ctx, reservationID, shared.StoredBooking{Booking: b, SavedAt: now, SavedBy: actor.Name()}); derr != nil {
			return derr
		}
		return tx.AppendAudit(ctx, reservationID, entry)
	})
	if err != nil {
		return r.mapStoreErr(err)
	}

	r.logger.Info("room booking added", "reservation_id", reservationID, "booking_id", b.ID(), "total", b.Total().String())
	return nil
}

func (r *reservationUseCaseImpl) PostCharge(
	ctx context.Context,
	reservationID uuid.UUID,
	source shared.ChargeSource,
	record folio.ChargeRecord,
	actor operator.Operator,
) (uuid.UUID, error) {
	if err := requireWriter(actor); err != nil {
		return uuid.Nil, err
	}
	if !source.IsValid() {
		return uuid.Nil, errs.Mark(errs.Newf("source %q", source), ErrUnknownChargeSource)
	}
	if err := folio.ValidateRecord(record); err != nil {
		r.logger.Warn("charge rejected", "reservation_id", reservationID, "source", source, "error", err.Error())
		return uuid.Nil, err
	}

	now := r.clock.Now()
	charge := shared.PostedCharge{
		ID:       uuid.New(),
		Source:   source,
		Record:   record,
		PostedBy: actor.Name(),
		PostedAt: now,
	}
	note := fmt.Sprintf("%s: %s", record.Description, record.Amount.Decimal.StringFixed(r.engine.Places()))
	entry, err := audit.NewEntry(source.Label()+" Charge Posted", actor.Name(), now, note)
	if err != nil {
		return uuid.Nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.AddCharge(ctx, reservationID, charge); derr != nil {
			return derr
		}
		return tx.AppendAudit(ctx, reservationID, entry)
	})
	if err != nil {
		return uuid.Nil, r.mapStoreErr(err)
	}

	r.logger.Info("charge posted",
		"reservation_id", reservationID,
		"charge_id", charge.ID,
		"source", string(source),
		"amount", record.Amount.Decimal.String(),
		"operator", actor.Name(),
	)
	return charge.ID, nil
}

func (r *reservationUseCaseImpl) RecordAudit(
	ctx context.Context,
	reservationID uuid.UUID,
	action, note string,
	actor operator.Operator,
) error {
	if err := requireWriter(actor); err != nil {
		return err
	}
	entry, err := audit.NewEntry(action, actor.Name(), r.clock.Now(), note)
	if err != nil {
		return err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AppendAudit(ctx, reservationID, entry)
	})
	if err != nil {
		return r.mapStoreErr(err)
	}

	r.logger.Info("audit recorded",
		"reservation_id", reservationID,
		"action", entry.Action(),
		"category", entry.Category().String(),
		"operator", actor.Name(),
	)
	return nil
}

func (r *reservationUseCaseImpl) mapStoreErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrDuplicateBooking)
	default:
		return errs.Mark(err, ErrStoreOperationFailed)
	}
}

func requireWriter(actor operator.Operator) error {
	if !actor.Role().CanWrite() {
		return ErrOperatorNotPermitted
	}
	return nil
}
