package flight

import (
	"context"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/transaction"
)

// Repository is the inventory store contract.
type Repository interface {
	// Create inserts a new flight with booked=0 and version=0.
	Create(ctx context.Context, f *Flight) error

	// GetByID returns the authoritative inventory row.
	// Returns ErrFlightNotFound if the flight does not exist.
	GetByID(ctx context.Context, id string) (*Flight, error)

	// List returns flights ordered by departure time.
	List(ctx context.Context, limit, offset int) ([]*Flight, error)

	// ConditionalUpdate sets booked=newBooked and version=expectedVersion+1
	// in a single atomic statement, but only if the stored version still
	// equals expectedVersion. Returns ErrVersionConflict when another writer
	// got there first, ErrFlightNotFound when the row is missing.
	// This is the only serialization point between concurrent bookers.
	ConditionalUpdate(ctx context.Context, tx transaction.Tx, id string, expectedVersion, newBooked int) error
}
