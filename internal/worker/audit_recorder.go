package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/audit"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/logger"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/metrics"
)

const persistTimeout = 5 * time.Second

// AuditRecorder drains booking-attempt entries off the engine's critical
// path. Record hands the entry to a bounded buffer and returns immediately;
// a single worker goroutine persists entries and, when a publisher is
// configured, forwards them to the external event sink. When the buffer is
// full the entry is dropped and logged rather than blocking a booking.
type AuditRecorder struct {
	repo      audit.Repository
	publisher audit.Publisher
	entries   chan audit.Entry
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewAuditRecorder creates a recorder with the given buffer size.
// publisher may be nil.
func NewAuditRecorder(repo audit.Repository, publisher audit.Publisher, bufferSize int) *AuditRecorder {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &AuditRecorder{
		repo:      repo,
		publisher: publisher,
		entries:   make(chan audit.Entry, bufferSize),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the worker loop until Stop is called or ctx is cancelled.
// On shutdown the buffer is drained so already-accepted entries still land.
func (r *AuditRecorder) Start(ctx context.Context) {
	logger.Info("audit recorder started", zap.Int("buffer", cap(r.entries)))

	defer close(r.doneCh)
	for {
		select {
		case <-ctx.Done():
			r.drain()
			return
		case <-r.stopCh:
			r.drain()
			return
		case entry := <-r.entries:
			r.persist(entry)
		}
	}
}

// Stop signals the worker and waits for it to finish draining.
func (r *AuditRecorder) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// Record accepts an entry without blocking. A full buffer drops the entry;
// audit is best-effort and must never hold up a booking.
func (r *AuditRecorder) Record(entry audit.Entry) {
	select {
	case r.entries <- entry:
	default:
		if m := metrics.Get(); m != nil {
			m.AuditEntriesTotal.WithLabelValues("dropped").Inc()
		}
		logger.Warn("audit buffer full, entry dropped",
			zap.String("flight_id", entry.FlightID),
			zap.String("outcome", string(entry.Outcome)),
		)
	}
}

func (r *AuditRecorder) persist(entry audit.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	status := "recorded"
	if err := r.repo.Append(ctx, entry); err != nil {
		status = "failed"
		logger.Error("failed to persist audit entry",
			zap.String("entry_id", entry.ID),
			zap.String("flight_id", entry.FlightID),
			zap.Error(err),
		)
	}
	if m := metrics.Get(); m != nil {
		m.AuditEntriesTotal.WithLabelValues(status).Inc()
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, entry); err != nil {
			logger.Warn("failed to publish audit entry",
				zap.String("entry_id", entry.ID),
				zap.Error(err),
			)
		}
	}
}

func (r *AuditRecorder) drain() {
	for {
		select {
		case entry := <-r.entries:
			r.persist(entry)
		default:
			logger.Info("audit recorder stopped")
			return
		}
	}
}

var _ audit.Recorder = (*AuditRecorder)(nil)
