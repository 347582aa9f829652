package booking

import (
	"context"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/transaction"
)

// Repository persists booking records.
type Repository interface {
	// Create inserts a booking inside the caller's transaction so it commits
	// atomically with the inventory update.
	Create(ctx context.Context, tx transaction.Tx, b *Booking) error

	// GetByID returns a booking. Returns ErrBookingNotFound if absent.
	GetByID(ctx context.Context, id string) (*Booking, error)

	// GetByFlightID returns all bookings for a flight, oldest first.
	GetByFlightID(ctx context.Context, flightID string) ([]*Booking, error)
}
