package audit

import "time"

// Outcome classifies the terminal result of one booking attempt.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeInsufficientSeats Outcome = "insufficient_seats"
	OutcomeNotFound          Outcome = "not_found"
	OutcomeConflictExhausted Outcome = "conflict_exhausted"
	OutcomeSystemError       Outcome = "system_error"
)

// Entry records one booking attempt, success or failure. Append-only.
type Entry struct {
	ID               string
	Timestamp        time.Time
	FlightID         string
	PassengerContact string
	RequestedSeats   int
	AvailableBefore  int
	Outcome          Outcome
	ErrorDetail      string
	BookingID        string // set only on success
}
