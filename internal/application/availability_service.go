package application

import (
	"context"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/pkg/metrics"
)

// AvailabilityService answers the read path. Cached values are served within
// TTL without touching the store; the booking write path never reads from
// here, so a stale cache can only ever produce a stale display value, never
// an oversold seat.
type AvailabilityService struct {
	flightRepo flight.Repository
	cache      AvailabilityCache
}

func NewAvailabilityService(fr flight.Repository, cache AvailabilityCache) *AvailabilityService {
	return &AvailabilityService{flightRepo: fr, cache: cache}
}

// GetAvailableSeats returns the available seat count for a flight, computing
// from the inventory store on cache miss or expiry.
func (s *AvailabilityService) GetAvailableSeats(ctx context.Context, flightID string) (int, error) {
	if s.cache != nil {
		if available, ok := s.cache.Get(flightID); ok {
			countCacheLookup("hit")
			return available, nil
		}
		countCacheLookup("miss")
	}

	f, err := s.flightRepo.GetByID(ctx, flightID)
	if err != nil {
		return 0, err
	}

	available := f.Available()
	if s.cache != nil {
		s.cache.Set(flightID, available)
	}
	return available, nil
}

func countCacheLookup(result string) {
	if m := metrics.Get(); m != nil {
		m.CacheLookupsTotal.WithLabelValues(result).Inc()
	}
}
