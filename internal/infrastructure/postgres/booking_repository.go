package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/booking"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/transaction"
)

type bookingRow struct {
	ID               string    `db:"id"`
	FlightID         string    `db:"flight_id"`
	PassengerName    string    `db:"passenger_name"`
	PassengerContact string    `db:"passenger_contact"`
	SeatCount        int       `db:"seat_count"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r *bookingRow) toEntity() *booking.Booking {
	return &booking.Booking{
		ID:       r.ID,
		FlightID: r.FlightID,
		Passenger: booking.Passenger{
			Name:    r.PassengerName,
			Contact: r.PassengerContact,
		},
		SeatCount: r.SeatCount,
		CreatedAt: r.CreatedAt,
	}
}

type BookingRepository struct{ db *sqlx.DB }

func NewBookingRepository(db *sqlx.DB) *BookingRepository { return &BookingRepository{db: db} }

func (r *BookingRepository) Create(ctx context.Context, tx transaction.Tx, b *booking.Booking) error {
	sqlxTx := UnwrapTx(tx)
	if sqlxTx == nil {
		return errors.New("booking insert requires a postgres transaction")
	}
	query := `INSERT INTO bookings (id, flight_id, passenger_name, passenger_contact, seat_count, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := sqlxTx.ExecContext(ctx, query, b.ID, b.FlightID, b.Passenger.Name, b.Passenger.Contact, b.SeatCount, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	query := `SELECT id, flight_id, passenger_name, passenger_contact, seat_count, created_at FROM bookings WHERE id = $1`
	var row bookingRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return row.toEntity(), nil
}

func (r *BookingRepository) GetByFlightID(ctx context.Context, flightID string) ([]*booking.Booking, error) {
	query := `SELECT id, flight_id, passenger_name, passenger_contact, seat_count, created_at FROM bookings WHERE flight_id = $1 ORDER BY created_at`
	var rows []bookingRow
	if err := r.db.SelectContext(ctx, &rows, query, flightID); err != nil {
		return nil, err
	}
	bookings := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = row.toEntity()
	}
	return bookings, nil
}

var _ booking.Repository = (*BookingRepository)(nil)
