// Package memstore keeps reservations, their bookings, posted charges and audit trails
// in process memory. Nothing survives a restart.
package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"hotel-folio/internal/domain/audit"
	"hotel-folio/internal/infra"
	"hotel-folio/internal/usecase/shared"

	"github.com/google/uuid"
)

type folioState struct {
	reservation shared.ReservationSnapshot
	bookings    []shared.StoredBooking
	charges     []shared.PostedCharge
	audit       audit.Log
}

type Store struct {
	mu     sync.RWMutex
	folios map[uuid.UUID]*folioState
	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	return &Store{
		folios: make(map[uuid.UUID]*folioState),
		logger: logger,
	}
}

// Within stages every write made through tx and applies them together when fn succeeds.
// The write lock is held for the whole call so staged reads cannot go stale.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return infra.Canceled(s.logger, err)
	}
	for _, op := range tx.ops {
		op()
	}
	return nil
}

func (s *Store) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.folios[id]
	if !ok {
		return nil, infra.NotFound("reservation", id)
	}
	snap := st.reservation
	return &snap, nil
}

func (s *Store) BookingsByReservation(_ context.Context, id uuid.UUID) ([]shared.StoredBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.folios[id]
	if !ok {
		return nil, infra.NotFound("reservation", id)
	}
	return slices.Clone(st.bookings), nil
}

func (s *Store) ChargesByReservation(_ context.Context, id uuid.UUID, source shared.ChargeSource) ([]shared.PostedCharge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.folios[id]
	if !ok {
		return nil, infra.NotFound("reservation", id)
	}
	out := make([]shared.PostedCharge, 0, len(st.charges))
	for _, c := range st.charges {
		if c.Source == source {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) AuditLog(_ context.Context, id uuid.UUID) (audit.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.folios[id]
	if !ok {
		return audit.Log{}, infra.NotFound("reservation", id)
	}
	return st.audit, nil
}

// memTx runs under the store's write lock.
type memTx struct {
	store  *Store
	staged map[uuid.UUID]bool
	ops    []func()
}

func (t *memTx) exists(id uuid.UUID) bool {
	if _, ok := t.store.folios[id]; ok {
		return true
	}
	return t.staged[id]
}

func (t *memTx) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	st, ok := t.store.folios[id]
	if !ok {
		return nil, infra.NotFound("reservation", id)
	}
	snap := st.reservation
	return &snap, nil
}

func (t *memTx) CreateReservation(_ context.Context, snap shared.ReservationSnapshot) error {
	if t.exists(snap.ID) {
		return infra.Duplicate("reservation", snap.ID)
	}
	if t.staged == nil {
		t.staged = make(map[uuid.UUID]bool)
	}
	t.staged[snap.ID] = true
	t.ops = append(t.ops, func() {
		t.store.folios[snap.ID] = &folioState{reservation: snap}
	})
	return nil
}

func (t *memTx) AddBooking(_ context.Context, reservationID uuid.UUID, b shared.StoredBooking) error {
	if !t.exists(reservationID) {
		return infra.NotFound("reservation", reservationID)
	}
	if st, ok := t.store.folios[reservationID]; ok {
		for _, existing := range st.bookings {
			if existing.Booking.ID() == b.Booking.ID() {
				return infra.Duplicate("booking", b.Booking.ID())
			}
		}
	}
	t.ops = append(t.ops, func() {
		st := t.store.folios[reservationID]
		st.bookings = append(st.bookings, b)
	})
	return nil
}

func (t *memTx) AddCharge(_ context.Context, reservationID uuid.UUID, c shared.PostedCharge) error {
	if !t.exists(reservationID) {
		return infra.NotFound("reservation", reservationID)
	}
	t.ops = append(t.ops, func() {
		st := t.store.folios[reservationID]
		st.charges = append(st.charges, c)
	})
	return nil
}

func (t *memTx) AppendAudit(_ context.Context, reservationID uuid.UUID, e audit.Entry) error {
	if !t.exists(reservationID) {
		return infra.NotFound("reservation", reservationID)
	}
	t.ops = append(t.ops, func() {
		st := t.store.folios[reservationID]
		st.audit = st.audit.Append(e)
	})
	return nil
}
