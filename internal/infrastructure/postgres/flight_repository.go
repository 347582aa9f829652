package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/transaction"
)

type flightRow struct {
	ID           string    `db:"id"`
	FlightNumber string    `db:"flight_number"`
	Origin       string    `db:"origin"`
	Destination  string    `db:"destination"`
	DepartureAt  time.Time `db:"departure_at"`
	Capacity     int       `db:"capacity"`
	Booked       int       `db:"booked"`
	Version      int       `db:"version"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r *flightRow) toEntity() *flight.Flight {
	return &flight.Flight{
		ID: r.ID, FlightNumber: r.FlightNumber,
		Origin: r.Origin, Destination: r.Destination, DepartureAt: r.DepartureAt,
		Capacity: r.Capacity, Booked: r.Booked, Version: r.Version,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

type FlightRepository struct{ db *sqlx.DB }

func NewFlightRepository(db *sqlx.DB) *FlightRepository { return &FlightRepository{db: db} }

func (r *FlightRepository) Create(ctx context.Context, f *flight.Flight) error {
	query := `INSERT INTO flights (id, flight_number, origin, destination, departure_at, capacity, booked, version, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, f.ID, f.FlightNumber, f.Origin, f.Destination, f.DepartureAt, f.Capacity, f.Booked, f.Version, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}
	return nil
}

func (r *FlightRepository) GetByID(ctx context.Context, id string) (*flight.Flight, error) {
	query := `SELECT id, flight_number, origin, destination, departure_at, capacity, booked, version, created_at, updated_at FROM flights WHERE id = $1`
	var row flightRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, flight.ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return row.toEntity(), nil
}

func (r *FlightRepository) List(ctx context.Context, limit, offset int) ([]*flight.Flight, error) {
	query := `SELECT id, flight_number, origin, destination, departure_at, capacity, booked, version, created_at, updated_at FROM flights ORDER BY departure_at LIMIT $1 OFFSET $2`
	var rows []flightRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, err
	}
	flights := make([]*flight.Flight, len(rows))
	for i, row := range rows {
		flights[i] = row.toEntity()
	}
	return flights, nil
}

// ConditionalUpdate is the optimistic compare-and-swap. The WHERE clause on
// version makes the check and the write one atomic statement; zero rows
// affected means another writer bumped the version since our read.
func (r *FlightRepository) ConditionalUpdate(ctx context.Context, tx transaction.Tx, id string, expectedVersion, newBooked int) error {
	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return errors.New("conditional update requires a postgres transaction")
	}

	query := `UPDATE flights SET booked = $1, version = version + 1, updated_at = NOW() WHERE id = $2 AND version = $3`
	result, err := sqlxTx.ExecContext(ctx, query, newBooked, id, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update flight inventory: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 1 {
		return nil
	}

	// Distinguish a lost race from a missing flight.
	var exists bool
	if err := sqlxTx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM flights WHERE id = $1)`, id); err != nil {
		return fmt.Errorf("failed to check flight existence: %w", err)
	}
	if !exists {
		return flight.ErrFlightNotFound
	}
	return flight.ErrVersionConflict
}

var _ flight.Repository = (*FlightRepository)(nil)
