package handler

import (
	"context"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/application"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/booking"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
)

// FlightServiceInterface is the flight administration surface.
type FlightServiceInterface interface {
	CreateFlight(ctx context.Context, input application.CreateFlightInput) (*flight.Flight, error)
	GetFlight(ctx context.Context, id string) (*flight.Flight, error)
	ListFlights(ctx context.Context, limit, offset int) ([]*flight.Flight, error)
}

// AvailabilityServiceInterface is the cached read path.
type AvailabilityServiceInterface interface {
	GetAvailableSeats(ctx context.Context, flightID string) (int, error)
}

// ReservationServiceInterface is the booking surface.
type ReservationServiceInterface interface {
	Reserve(ctx context.Context, input application.ReserveInput) (*booking.Booking, error)
	GetBooking(ctx context.Context, id string) (*booking.Booking, error)
	GetFlightBookings(ctx context.Context, flightID string) ([]*booking.Booking, error)
}
