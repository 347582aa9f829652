package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/audit"
)

// AuditRepository appends booking-attempt entries. The table is append-only;
// nothing updates or deletes rows.
type AuditRepository struct{ db *sqlx.DB }

func NewAuditRepository(db *sqlx.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ctx context.Context, e audit.Entry) error {
	query := `INSERT INTO audit_entries (id, occurred_at, flight_id, passenger_contact, requested_seats, available_before, outcome, error_detail, booking_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Timestamp, e.FlightID, e.PassengerContact,
		e.RequestedSeats, e.AvailableBefore, string(e.Outcome),
		nullIfEmpty(e.ErrorDetail), nullIfEmpty(e.BookingID),
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

var _ audit.Repository = (*AuditRepository)(nil)
