package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	b := NewBooking("flight-1", Passenger{Name: "Aiko Tanaka", Contact: "aiko@example.com"}, 2)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "flight-1", b.FlightID)
	assert.Equal(t, "Aiko Tanaka", b.Passenger.Name)
	assert.Equal(t, 2, b.SeatCount)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestBooking_Validate(t *testing.T) {
	valid := func() *Booking {
		return NewBooking("flight-1", Passenger{Name: "Aiko Tanaka", Contact: "aiko@example.com"}, 2)
	}

	t.Run("valid booking", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing flight ID", func(t *testing.T) {
		b := valid()
		b.FlightID = ""
		assert.ErrorIs(t, b.Validate(), ErrFlightIDRequired)
	})

	t.Run("missing passenger name", func(t *testing.T) {
		b := valid()
		b.Passenger.Name = ""
		assert.ErrorIs(t, b.Validate(), ErrPassengerNameRequired)
	})

	t.Run("missing passenger contact", func(t *testing.T) {
		b := valid()
		b.Passenger.Contact = ""
		assert.ErrorIs(t, b.Validate(), ErrPassengerContactRequired)
	})

	t.Run("non-positive seat count", func(t *testing.T) {
		b := valid()
		b.SeatCount = 0
		assert.ErrorIs(t, b.Validate(), ErrInvalidSeatCount)
	})
}
