//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hotel-folio/internal/domain/audit"
	"hotel-folio/internal/infra"
	"hotel-folio/internal/infra/memstore"
	"hotel-folio/internal/usecase/shared"
	"hotel-folio/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *memstore.Store
	ctx   context.Context
	resID uuid.UUID
}

func (s *StoreTestSuite) SetupTest() {
	s.store = memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()

	snap := builder.NewReservationBuilder().BuildSnapshot()
	s.resID = snap.ID
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CreateReservation(ctx, snap)
	})
	s.Require().NoError(err)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) entry(action string) audit.Entry {
	e, err := audit.NewEntry(action, "Asha", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), "")
	s.Require().NoError(err)
	return e
}

func (s *StoreTestSuite) TestReservationByID() {
	s.Run("found", func() {
		snap, err := s.store.ReservationByID(s.ctx, s.resID)
		s.Require().NoError(err)
		s.Equal("Priya Raman", snap.GuestName)
	})

	s.Run("not found", func() {
		_, err := s.store.ReservationByID(s.ctx, uuid.New())
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *StoreTestSuite) TestWithin_CommitsTogether() {
	b := builder.NewBookingBuilder().BuildStored()
	charge := builder.NewChargeBuilder().BuildPosted()

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.AddBooking(ctx, s.resID, b); err != nil {
			return err
		}
		if err := tx.AddCharge(ctx, s.resID, charge); err != nil {
			return err
		}
		return tx.AppendAudit(ctx, s.resID, s.entry("Room Booking Created"))
	})
	s.Require().NoError(err)

	bookings, err := s.store.BookingsByReservation(s.ctx, s.resID)
	s.Require().NoError(err)
	s.Len(bookings, 1)
	s.Equal(b.Booking.ID(), bookings[0].Booking.ID())

	fb, err := s.store.ChargesByReservation(s.ctx, s.resID, shared.SourceFoodAndBeverage)
	s.Require().NoError(err)
	s.Len(fb, 1)
	service, err := s.store.ChargesByReservation(s.ctx, s.resID, shared.SourceService)
	s.Require().NoError(err)
	s.Empty(service)

	log, err := s.store.AuditLog(s.ctx, s.resID)
	s.Require().NoError(err)
	s.Equal(1, log.Len())
}

func (s *StoreTestSuite) TestWithin_RollsBackOnError() {
	boom := errors.New("boom")

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		s.Require().NoError(tx.AddBooking(ctx, s.resID, builder.NewBookingBuilder().BuildStored()))
		s.Require().NoError(tx.AppendAudit(ctx, s.resID, s.entry("Room Booking Created")))
		return boom
	})
	s.ErrorIs(err, boom)

	bookings, err := s.store.BookingsByReservation(s.ctx, s.resID)
	s.Require().NoError(err)
	s.Empty(bookings)
	log, err := s.store.AuditLog(s.ctx, s.resID)
	s.Require().NoError(err)
	s.Equal(0, log.Len())
}

func (s *StoreTestSuite) TestWithin_Canceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AppendAudit(ctx, s.resID, s.entry("Payment Received"))
	})
	s.True(infra.IsKind(err, infra.KindCanceled))

	log, err := s.store.AuditLog(s.ctx, s.resID)
	s.Require().NoError(err)
	s.Equal(0, log.Len())
}

func (s *StoreTestSuite) TestWrites_Errors() {
	s.Run("duplicate reservation", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		snap.ID = s.resID
		err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.CreateReservation(ctx, snap)
		})
		s.True(infra.IsKind(err, infra.KindDuplicateKey))
	})

	s.Run("duplicate booking", func() {
		b := builder.NewBookingBuilder().BuildStored()
		add := func() error {
			return s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.AddBooking(ctx, s.resID, b)
			})
		}
		s.Require().NoError(add())
		s.True(infra.IsKind(add(), infra.KindDuplicateKey))
	})

	s.Run("unknown reservation", func() {
		unknown := uuid.New()
		err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.AddCharge(ctx, unknown, builder.NewChargeBuilder().BuildPosted())
		})
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("writes to a reservation created in the same call", func() {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.CreateReservation(ctx, snap); err != nil {
				return err
			}
			return tx.AppendAudit(ctx, snap.ID, s.entry("Reservation Created"))
		})
		s.Require().NoError(err)

		log, err := s.store.AuditLog(s.ctx, snap.ID)
		s.Require().NoError(err)
		s.Equal(1, log.Len())
	})
}

func (s *StoreTestSuite) TestAuditLog_KeepsWriteOrder() {
	for _, action := range []string{"Reservation Created", "Payment Received", "Checked In"} {
		err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.AppendAudit(ctx, s.resID, s.entry(action))
		})
		s.Require().NoError(err)
	}

	log, err := s.store.AuditLog(s.ctx, s.resID)
	s.Require().NoError(err)
	got := make([]string, 0, log.Len())
	for _, e := range log.Entries() {
		got = append(got, e.Action())
	}
	s.Equal([]string{"Reservation Created", "Payment Received", "Checked In"}, got)
}

func TestStore_ConcurrentWriters(t *testing.T) {
	store := memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	snap := builder.NewReservationBuilder().BuildSnapshot()
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CreateReservation(ctx, snap)
	}))

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			charge := builder.NewChargeBuilder().AsService().BuildPosted()
			err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.AddCharge(ctx, snap.ID, charge)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	charges, err := store.ChargesByReservation(ctx, snap.ID, shared.SourceService)
	require.NoError(t, err)
	assert.Len(t, charges, writers)
}
