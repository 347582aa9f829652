package flight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlight(t *testing.T) {
	departure := time.Now().Add(48 * time.Hour)
	f := NewFlight("NH204", "HND", "SFO", departure, 180)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "NH204", f.FlightNumber)
	assert.Equal(t, 180, f.Capacity)
	assert.Equal(t, 0, f.Booked)
	assert.Equal(t, 0, f.Version)
	assert.Equal(t, 180, f.Available())
}

func TestFlight_CanAccommodate(t *testing.T) {
	f := NewFlight("NH204", "HND", "SFO", time.Now().Add(time.Hour), 10)
	f.Booked = 7

	t.Run("fits in remaining capacity", func(t *testing.T) {
		assert.True(t, f.CanAccommodate(1))
		assert.True(t, f.CanAccommodate(3))
	})

	t.Run("exceeds remaining capacity", func(t *testing.T) {
		assert.False(t, f.CanAccommodate(4))
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		assert.False(t, f.CanAccommodate(0))
		assert.False(t, f.CanAccommodate(-2))
	})

	t.Run("full flight accommodates nothing", func(t *testing.T) {
		f.Booked = 10
		assert.Equal(t, 0, f.Available())
		assert.False(t, f.CanAccommodate(1))
	})
}

func TestFlight_Validate(t *testing.T) {
	valid := func() *Flight {
		return NewFlight("NH204", "HND", "SFO", time.Now().Add(time.Hour), 100)
	}

	t.Run("valid flight", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing flight number", func(t *testing.T) {
		f := valid()
		f.FlightNumber = ""
		assert.ErrorIs(t, f.Validate(), ErrFlightNumberRequired)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		f := valid()
		f.Capacity = 0
		assert.ErrorIs(t, f.Validate(), ErrInvalidCapacity)
	})

	t.Run("booked count out of range", func(t *testing.T) {
		f := valid()
		f.Booked = 101
		assert.ErrorIs(t, f.Validate(), ErrInvalidBookedCount)

		f.Booked = -1
		assert.ErrorIs(t, f.Validate(), ErrInvalidBookedCount)
	})
}

func TestIsInsufficientSeats(t *testing.T) {
	t.Run("matches wrapped error", func(t *testing.T) {
		err := &InsufficientSeatsError{Available: 2, Requested: 5}
		ise, ok := IsInsufficientSeats(err)
		require.True(t, ok)
		assert.Equal(t, 2, ise.Available)
		assert.Equal(t, 5, ise.Requested)
		assert.Contains(t, err.Error(), "requested 5")
		assert.Contains(t, err.Error(), "available 2")
	})

	t.Run("does not match other errors", func(t *testing.T) {
		_, ok := IsInsufficientSeats(ErrVersionConflict)
		assert.False(t, ok)

		_, ok = IsInsufficientSeats(nil)
		assert.False(t, ok)
	})
}
