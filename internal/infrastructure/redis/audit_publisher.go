package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/audit"
)

// AuditPublisher appends completed audit entries to a Redis Stream so
// external consumers (compliance, analytics) can tail them. Best-effort:
// the recorder logs failures and moves on.
type AuditPublisher struct {
	client *redis.Client
	stream string
}

func NewAuditPublisher(client *redis.Client, stream string) *AuditPublisher {
	return &AuditPublisher{client: client, stream: stream}
}

// Publish appends one entry to the stream via XADD.
func (p *AuditPublisher) Publish(ctx context.Context, e audit.Entry) error {
	values := map[string]interface{}{
		"id":                e.ID,
		"occurred_at":       e.Timestamp.UnixMilli(),
		"flight_id":         e.FlightID,
		"passenger_contact": e.PassengerContact,
		"requested_seats":   e.RequestedSeats,
		"available_before":  e.AvailableBefore,
		"outcome":           string(e.Outcome),
	}
	if e.ErrorDetail != "" {
		values["error_detail"] = e.ErrorDetail
	}
	if e.BookingID != "" {
		values["booking_id"] = e.BookingID
	}

	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish audit entry: %w", err)
	}
	return nil
}

var _ audit.Publisher = (*AuditPublisher)(nil)
