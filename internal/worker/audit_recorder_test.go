package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/audit"
)

// collectingRepo records appended entries and can be told to fail.
type collectingRepo struct {
	mu      sync.Mutex
	entries []audit.Entry
	err     error
}

func (r *collectingRepo) Append(_ context.Context, e audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *collectingRepo) Entries() []audit.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]audit.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

type collectingPublisher struct {
	mu        sync.Mutex
	published []audit.Entry
	err       error
}

func (p *collectingPublisher) Publish(_ context.Context, e audit.Entry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, e)
	return nil
}

func (p *collectingPublisher) Published() []audit.Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]audit.Entry, len(p.published))
	copy(out, p.published)
	return out
}

func testEntry(id string) audit.Entry {
	return audit.Entry{
		ID:               id,
		Timestamp:        time.Now(),
		FlightID:         "flight-1",
		PassengerContact: "aiko@example.com",
		RequestedSeats:   2,
		AvailableBefore:  5,
		Outcome:          audit.OutcomeSuccess,
	}
}

func TestAuditRecorder_PersistsEntries(t *testing.T) {
	repo := &collectingRepo{}
	rec := NewAuditRecorder(repo, nil, 8)

	go rec.Start(context.Background())

	rec.Record(testEntry("e1"))
	rec.Record(testEntry("e2"))

	assert.Eventually(t, func() bool {
		return len(repo.Entries()) == 2
	}, time.Second, 5*time.Millisecond)

	rec.Stop()

	entries := repo.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, "e2", entries[1].ID)
}

func TestAuditRecorder_PublishesWhenConfigured(t *testing.T) {
	repo := &collectingRepo{}
	pub := &collectingPublisher{}
	rec := NewAuditRecorder(repo, pub, 8)

	go rec.Start(context.Background())
	rec.Record(testEntry("e1"))

	assert.Eventually(t, func() bool {
		return len(pub.Published()) == 1
	}, time.Second, 5*time.Millisecond)

	rec.Stop()
	assert.Equal(t, "e1", pub.Published()[0].ID)
}

func TestAuditRecorder_PublisherFailureDoesNotBlockPersistence(t *testing.T) {
	repo := &collectingRepo{}
	pub := &collectingPublisher{err: errors.New("stream unavailable")}
	rec := NewAuditRecorder(repo, pub, 8)

	go rec.Start(context.Background())
	rec.Record(testEntry("e1"))
	rec.Record(testEntry("e2"))

	assert.Eventually(t, func() bool {
		return len(repo.Entries()) == 2
	}, time.Second, 5*time.Millisecond)
	rec.Stop()
}

func TestAuditRecorder_RepoFailureDoesNotStopWorker(t *testing.T) {
	repo := &collectingRepo{err: errors.New("db down")}
	rec := NewAuditRecorder(repo, nil, 8)

	go rec.Start(context.Background())
	rec.Record(testEntry("e1"))

	// Recovery: subsequent entries persist once the repo is healthy again.
	time.Sleep(20 * time.Millisecond)
	repo.mu.Lock()
	repo.err = nil
	repo.mu.Unlock()

	rec.Record(testEntry("e2"))
	assert.Eventually(t, func() bool {
		entries := repo.Entries()
		return len(entries) == 1 && entries[0].ID == "e2"
	}, time.Second, 5*time.Millisecond)
	rec.Stop()
}

func TestAuditRecorder_DropsWhenBufferFull(t *testing.T) {
	repo := &collectingRepo{}
	// Worker not started: the buffer fills and stays full.
	rec := NewAuditRecorder(repo, nil, 1)

	rec.Record(testEntry("e1"))

	done := make(chan struct{})
	go func() {
		rec.Record(testEntry("e2")) // must not block
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full buffer")
	}

	// Start the worker and stop it so the accepted entry drains.
	go rec.Start(context.Background())
	assert.Eventually(t, func() bool {
		return len(repo.Entries()) == 1
	}, time.Second, 5*time.Millisecond)
	rec.Stop()

	entries := repo.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID, "the overflow entry was dropped")
}

func TestAuditRecorder_StopDrainsAcceptedEntries(t *testing.T) {
	repo := &collectingRepo{}
	rec := NewAuditRecorder(repo, nil, 16)

	// Queue entries before the worker runs, then run and stop immediately:
	// everything accepted must still land.
	for i := 0; i < 5; i++ {
		rec.Record(testEntry(string(rune('a' + i))))
	}

	go rec.Start(context.Background())
	rec.Stop()

	assert.Len(t, repo.Entries(), 5)
}

func TestNewAuditRecorder_DefaultBufferSize(t *testing.T) {
	rec := NewAuditRecorder(&collectingRepo{}, nil, 0)
	assert.Equal(t, 256, cap(rec.entries))
}
