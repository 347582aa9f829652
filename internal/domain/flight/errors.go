package flight

import (
	"errors"
	"fmt"
)

// Flight domain errors
var (
	ErrFlightNotFound       = errors.New("flight not found")
	ErrVersionConflict      = errors.New("flight version conflict")
	ErrFlightNumberRequired = errors.New("flight number is required")
	ErrInvalidCapacity      = errors.New("capacity must be positive")
	ErrInvalidBookedCount   = errors.New("booked count must be between 0 and capacity")
)

// InsufficientSeatsError is returned when a booking requests more seats than
// are available. It carries the availability observed at validation time so
// callers can report it to the user.
type InsufficientSeatsError struct {
	Available int
	Requested int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("insufficient seats: requested %d, available %d", e.Requested, e.Available)
}

// IsInsufficientSeats reports whether err is an InsufficientSeatsError and
// returns it if so.
func IsInsufficientSeats(err error) (*InsufficientSeatsError, bool) {
	var ise *InsufficientSeatsError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}
