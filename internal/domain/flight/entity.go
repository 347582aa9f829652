package flight

import (
	"time"

	"github.com/google/uuid"
)

// Flight is the inventory record for one bookable flight.
type Flight struct {
	ID           string
	FlightNumber string
	Origin       string
	Destination  string
	DepartureAt  time.Time
	Capacity     int
	Booked       int
	Version      int // optimistic concurrency token
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewFlight creates a flight with full availability.
func NewFlight(flightNumber, origin, destination string, departureAt time.Time, capacity int) *Flight {
	now := time.Now()
	return &Flight{
		ID:           uuid.NewString(),
		FlightNumber: flightNumber,
		Origin:       origin,
		Destination:  destination,
		DepartureAt:  departureAt,
		Capacity:     capacity,
		Booked:       0,
		Version:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Available returns the number of seats still bookable.
func (f *Flight) Available() int {
	return f.Capacity - f.Booked
}

// CanAccommodate reports whether seatCount seats fit in the remaining capacity.
func (f *Flight) CanAccommodate(seatCount int) bool {
	return seatCount > 0 && seatCount <= f.Available()
}

// Validate checks the flight invariants.
func (f *Flight) Validate() error {
	if f.FlightNumber == "" {
		return ErrFlightNumberRequired
	}
	if f.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if f.Booked < 0 || f.Booked > f.Capacity {
		return ErrInvalidBookedCount
	}
	return nil
}
