package booking

import "errors"

// Booking domain errors
var (
	ErrBookingNotFound          = errors.New("booking not found")
	ErrFlightIDRequired         = errors.New("flight ID is required")
	ErrPassengerNameRequired    = errors.New("passenger name is required")
	ErrPassengerContactRequired = errors.New("passenger contact is required")
	ErrInvalidSeatCount         = errors.New("seat count must be positive")

	// ErrBookingContention signals that the booking lost the write race on
	// every attempt the retry policy allowed. The caller may retry; it is
	// not a statement about seat availability.
	ErrBookingContention = errors.New("booking abandoned after repeated write conflicts")
)
