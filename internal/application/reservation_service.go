package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/audit"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/booking"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/transaction"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/logger"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/metrics"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/retry"
)

// AvailabilityCache is the slice of the cache layer the services depend on.
type AvailabilityCache interface {
	Get(flightID string) (int, bool)
	Set(flightID string, available int)
	Invalidate(flightID string)
}

// ReservationService books seats with optimistic concurrency control: read
// fresh inventory, validate, then a conditional write that only succeeds if
// nobody else updated the flight in between. Lost races are retried with
// backoff against re-read data. No lock is held across the read-validate-write
// span; the store's conditional update is the single serialization point.
type ReservationService struct {
	txManager   transaction.Manager
	flightRepo  flight.Repository
	bookingRepo booking.Repository
	cache       AvailabilityCache
	recorder    audit.Recorder
	policy      retry.Policy
}

func NewReservationService(
	txm transaction.Manager,
	fr flight.Repository,
	br booking.Repository,
	cache AvailabilityCache,
	recorder audit.Recorder,
	policy retry.Policy,
) *ReservationService {
	return &ReservationService{
		txManager:   txm,
		flightRepo:  fr,
		bookingRepo: br,
		cache:       cache,
		recorder:    recorder,
		policy:      policy,
	}
}

type ReserveInput struct {
	FlightID         string
	SeatCount        int
	PassengerName    string
	PassengerContact string
}

// Reserve books seats on a flight. Terminal failures:
// flight.ErrFlightNotFound, *flight.InsufficientSeatsError (carries observed
// availability) and booking.ErrBookingContention once the retry budget for
// write conflicts is spent. Whatever the outcome, the availability cache is
// invalidated exactly once and exactly one audit entry is submitted, neither
// of which can block or fail the booking result.
func (s *ReservationService) Reserve(ctx context.Context, input ReserveInput) (*booking.Booking, error) {
	start := time.Now()

	var (
		result          *booking.Booking
		availableBefore int
	)

	attempt := func(ctx context.Context) error {
		// Always read authoritative data, never the cache. A retry re-runs
		// the whole read-validate-write cycle, so a request that started
		// with seats available can correctly end as insufficient when real
		// availability moved underneath it.
		f, err := s.flightRepo.GetByID(ctx, input.FlightID)
		if err != nil {
			return err
		}
		availableBefore = f.Available()

		if !f.CanAccommodate(input.SeatCount) {
			return &flight.InsufficientSeatsError{
				Available: f.Available(),
				Requested: input.SeatCount,
			}
		}

		b := booking.NewBooking(input.FlightID, booking.Passenger{
			Name:    input.PassengerName,
			Contact: input.PassengerContact,
		}, input.SeatCount)
		if err := b.Validate(); err != nil {
			return err
		}

		// Booking insert and inventory update commit or fail together.
		tx, err := s.txManager.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		if err := s.bookingRepo.Create(ctx, tx, b); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		if err := s.flightRepo.ConditionalUpdate(ctx, tx, f.ID, f.Version, f.Booked+input.SeatCount); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit: %w", err)
		}

		result = b
		return nil
	}

	retryable := func(err error) bool {
		if !errors.Is(err, flight.ErrVersionConflict) {
			return false
		}
		if m := metrics.Get(); m != nil {
			m.BookingRetriesTotal.Inc()
		}
		logger.Debug("booking lost write race",
			zap.String("flight_id", input.FlightID),
			zap.Int("seat_count", input.SeatCount),
		)
		return true
	}

	err := s.policy.Do(ctx, retryable, attempt)
	if errors.Is(err, flight.ErrVersionConflict) {
		// Sustained contention, not a capacity shortfall: the caller may
		// simply try again.
		err = booking.ErrBookingContention
	}

	s.settle(input, result, availableBefore, err)

	if m := metrics.Get(); m != nil {
		m.BookingDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetBooking returns a booking by ID.
func (s *ReservationService) GetBooking(ctx context.Context, id string) (*booking.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// GetFlightBookings returns all bookings for a flight, oldest first.
func (s *ReservationService) GetFlightBookings(ctx context.Context, flightID string) ([]*booking.Booking, error) {
	return s.bookingRepo.GetByFlightID(ctx, flightID)
}

// settle runs the per-terminal-outcome side effects: one cache invalidation
// and one audit submission. Both are best-effort.
func (s *ReservationService) settle(input ReserveInput, b *booking.Booking, availableBefore int, reserveErr error) {
	if s.cache != nil {
		s.cache.Invalidate(input.FlightID)
	}

	outcome, detail := classifyOutcome(reserveErr)
	entry := audit.Entry{
		ID:               uuid.NewString(),
		Timestamp:        time.Now(),
		FlightID:         input.FlightID,
		PassengerContact: input.PassengerContact,
		RequestedSeats:   input.SeatCount,
		AvailableBefore:  availableBefore,
		Outcome:          outcome,
		ErrorDetail:      detail,
	}
	if b != nil {
		entry.BookingID = b.ID
	}
	if s.recorder != nil {
		s.recorder.Record(entry)
	}

	if m := metrics.Get(); m != nil {
		m.BookingsTotal.WithLabelValues(string(outcome)).Inc()
	}
}

func classifyOutcome(err error) (audit.Outcome, string) {
	switch {
	case err == nil:
		return audit.OutcomeSuccess, ""
	case errors.Is(err, flight.ErrFlightNotFound):
		return audit.OutcomeNotFound, err.Error()
	case errors.Is(err, booking.ErrBookingContention):
		return audit.OutcomeConflictExhausted, err.Error()
	default:
		if _, ok := flight.IsInsufficientSeats(err); ok {
			return audit.OutcomeInsufficientSeats, err.Error()
		}
		return audit.OutcomeSystemError, err.Error()
	}
}
