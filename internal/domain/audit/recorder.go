package audit

import "context"

// Recorder accepts entries off the booking critical path. Record must never
// block the caller and must never fail the booking that produced the entry.
type Recorder interface {
	Record(entry Entry)
}

// Repository persists entries as an append-only log.
type Repository interface {
	Append(ctx context.Context, entry Entry) error
}

// Publisher forwards completed entries to an external event sink
// (compliance/analytics). Best-effort.
type Publisher interface {
	Publish(ctx context.Context, entry Entry) error
}
