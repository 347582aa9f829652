package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/cache"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
)

func TestAvailabilityService_GetAvailableSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("miss computes from store and caches", func(t *testing.T) {
		mockFlights := new(MockFlightRepository)
		c := cache.NewAvailabilityCache(8, time.Minute)
		svc := NewAvailabilityService(mockFlights, c)

		mockFlights.On("GetByID", mock.Anything, "flight-1").Return(testFlight(1, 4), nil).Once()

		available, err := svc.GetAvailableSeats(ctx, "flight-1")
		require.NoError(t, err)
		assert.Equal(t, 6, available)

		cached, ok := c.Get("flight-1")
		require.True(t, ok)
		assert.Equal(t, 6, cached)
	})

	t.Run("hit serves from cache without touching the store", func(t *testing.T) {
		mockFlights := new(MockFlightRepository)
		c := cache.NewAvailabilityCache(8, time.Minute)
		svc := NewAvailabilityService(mockFlights, c)

		c.Set("flight-1", 3)

		available, err := svc.GetAvailableSeats(ctx, "flight-1")
		require.NoError(t, err)
		assert.Equal(t, 3, available)

		mockFlights.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("expired entry falls back to the store", func(t *testing.T) {
		mockFlights := new(MockFlightRepository)
		c := cache.NewAvailabilityCache(8, 15*time.Millisecond)
		svc := NewAvailabilityService(mockFlights, c)

		c.Set("flight-1", 3)
		time.Sleep(40 * time.Millisecond)

		mockFlights.On("GetByID", mock.Anything, "flight-1").Return(testFlight(2, 8), nil).Once()

		available, err := svc.GetAvailableSeats(ctx, "flight-1")
		require.NoError(t, err)
		assert.Equal(t, 2, available)
		mockFlights.AssertExpectations(t)
	})

	t.Run("unknown flight is not cached", func(t *testing.T) {
		mockFlights := new(MockFlightRepository)
		c := cache.NewAvailabilityCache(8, time.Minute)
		svc := NewAvailabilityService(mockFlights, c)

		mockFlights.On("GetByID", mock.Anything, "missing").Return(nil, flight.ErrFlightNotFound).Twice()

		_, err := svc.GetAvailableSeats(ctx, "missing")
		assert.ErrorIs(t, err, flight.ErrFlightNotFound)

		// Still a miss on the second call.
		_, err = svc.GetAvailableSeats(ctx, "missing")
		assert.ErrorIs(t, err, flight.ErrFlightNotFound)
		mockFlights.AssertExpectations(t)
	})

	t.Run("nil cache always computes", func(t *testing.T) {
		mockFlights := new(MockFlightRepository)
		svc := NewAvailabilityService(mockFlights, nil)

		mockFlights.On("GetByID", mock.Anything, "flight-1").Return(testFlight(1, 4), nil).Twice()

		for i := 0; i < 2; i++ {
			available, err := svc.GetAvailableSeats(ctx, "flight-1")
			require.NoError(t, err)
			assert.Equal(t, 6, available)
		}
		mockFlights.AssertExpectations(t)
	})
}
