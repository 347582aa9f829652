package application

import (
	"context"
	"time"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
)

// FlightService manages flight inventory rows. Creation fixes the capacity;
// only the reservation engine mutates the booked count afterwards.
type FlightService struct {
	flightRepo flight.Repository
}

func NewFlightService(fr flight.Repository) *FlightService {
	return &FlightService{flightRepo: fr}
}

type CreateFlightInput struct {
	FlightNumber string
	Origin       string
	Destination  string
	DepartureAt  time.Time
	Capacity     int
}

func (s *FlightService) CreateFlight(ctx context.Context, input CreateFlightInput) (*flight.Flight, error) {
	f := flight.NewFlight(input.FlightNumber, input.Origin, input.Destination, input.DepartureAt, input.Capacity)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := s.flightRepo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FlightService) GetFlight(ctx context.Context, id string) (*flight.Flight, error) {
	return s.flightRepo.GetByID(ctx, id)
}

func (s *FlightService) ListFlights(ctx context.Context, limit, offset int) ([]*flight.Flight, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.flightRepo.List(ctx, limit, offset)
}
