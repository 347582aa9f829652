package booking

import (
	"time"

	"github.com/google/uuid"
)

// Passenger identifies who the seats are booked for.
type Passenger struct {
	Name    string
	Contact string
}

// Booking is one accepted seat reservation. Immutable once created; it is
// persisted in the same transaction as the inventory update that accepted it.
type Booking struct {
	ID        string
	FlightID  string
	Passenger Passenger
	SeatCount int
	CreatedAt time.Time
}

// NewBooking creates a booking record for the given flight.
func NewBooking(flightID string, passenger Passenger, seatCount int) *Booking {
	return &Booking{
		ID:        uuid.NewString(),
		FlightID:  flightID,
		Passenger: passenger,
		SeatCount: seatCount,
		CreatedAt: time.Now(),
	}
}

// Validate checks the booking invariants.
func (b *Booking) Validate() error {
	if b.FlightID == "" {
		return ErrFlightIDRequired
	}
	if b.Passenger.Name == "" {
		return ErrPassengerNameRequired
	}
	if b.Passenger.Contact == "" {
		return ErrPassengerContactRequired
	}
	if b.SeatCount <= 0 {
		return ErrInvalidSeatCount
	}
	return nil
}
