package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/audit"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/booking"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/transaction"
)

// Store is an in-memory implementation of the persistence contracts, used in
// tests and local development. A transaction holds the store lock from Begin
// until Commit or Rollback, so the booking insert and the conditional
// inventory update form one atomic unit, mirroring the postgres transaction.
type Store struct {
	mu       sync.RWMutex
	flights  map[string]*flight.Flight
	bookings map[string]*booking.Booking
	entries  []audit.Entry
}

func NewStore() *Store {
	return &Store{
		flights:  make(map[string]*flight.Flight),
		bookings: make(map[string]*booking.Booking),
	}
}

// Tx stages writes while holding the store lock. Commit applies them;
// Rollback discards them. Either releases the lock exactly once.
type Tx struct {
	store   *Store
	staged  []func()
	settled bool
}

// Begin acquires the store lock. Reads from other goroutines block until the
// transaction settles, which keeps conditional updates truly atomic.
func (s *Store) Begin(_ context.Context) (transaction.Tx, error) {
	s.mu.Lock()
	return &Tx{store: s}, nil
}

func (t *Tx) Commit() error {
	if t.settled {
		return errors.New("transaction already settled")
	}
	for _, apply := range t.staged {
		apply()
	}
	t.settled = true
	t.store.mu.Unlock()
	return nil
}

func (t *Tx) Rollback() error {
	if t.settled {
		return nil
	}
	t.staged = nil
	t.settled = true
	t.store.mu.Unlock()
	return nil
}

func memTx(tx transaction.Tx) (*Tx, error) {
	mt, ok := tx.(*Tx)
	if !ok || mt.settled {
		return nil, errors.New("memory store requires an open memory transaction")
	}
	return mt, nil
}

// --- flight.Repository ---

func (s *Store) Create(_ context.Context, f *flight.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *f
	s.flights[f.ID] = &cp
	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (*flight.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flights[id]
	if !ok {
		return nil, flight.ErrFlightNotFound
	}
	cp := *f
	return &cp, nil
}

func (s *Store) List(_ context.Context, limit, offset int) ([]*flight.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*flight.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		cp := *f
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DepartureAt.Before(all[j].DepartureAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// ConditionalUpdate checks the version under the transaction-held lock and
// stages the write. The check stays valid through Commit because the lock is
// not released in between.
func (s *Store) ConditionalUpdate(_ context.Context, tx transaction.Tx, id string, expectedVersion, newBooked int) error {
	mt, err := memTx(tx)
	if err != nil {
		return err
	}
	f, ok := s.flights[id]
	if !ok {
		return flight.ErrFlightNotFound
	}
	if f.Version != expectedVersion {
		return flight.ErrVersionConflict
	}
	mt.staged = append(mt.staged, func() {
		f.Booked = newBooked
		f.Version = expectedVersion + 1
		f.UpdatedAt = time.Now()
	})
	return nil
}

// --- booking.Repository ---

func (s *Store) CreateBooking(_ context.Context, tx transaction.Tx, b *booking.Booking) error {
	mt, err := memTx(tx)
	if err != nil {
		return err
	}
	cp := *b
	mt.staged = append(mt.staged, func() {
		s.bookings[cp.ID] = &cp
	})
	return nil
}

func (s *Store) GetBookingByID(_ context.Context, id string) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *Store) GetBookingsByFlightID(_ context.Context, flightID string) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.FlightID == flightID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- audit.Repository ---

func (s *Store) Append(_ context.Context, e audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

// AuditEntries returns a snapshot of the recorded entries, oldest first.
func (s *Store) AuditEntries() []audit.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]audit.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Bookings adapts the store to the booking.Repository interface, whose method
// names collide with the flight repository's.
func (s *Store) Bookings() booking.Repository {
	return bookingView{s}
}

type bookingView struct{ s *Store }

func (v bookingView) Create(ctx context.Context, tx transaction.Tx, b *booking.Booking) error {
	return v.s.CreateBooking(ctx, tx, b)
}

func (v bookingView) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	return v.s.GetBookingByID(ctx, id)
}

func (v bookingView) GetByFlightID(ctx context.Context, flightID string) ([]*booking.Booking, error) {
	return v.s.GetBookingsByFlightID(ctx, flightID)
}

var (
	_ transaction.Manager = (*Store)(nil)
	_ flight.Repository   = (*Store)(nil)
	_ booking.Repository  = bookingView{}
	_ audit.Repository    = (*Store)(nil)
)
