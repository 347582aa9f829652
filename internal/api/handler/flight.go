package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/application"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
)

type FlightHandler struct {
	service      FlightServiceInterface
	availability AvailabilityServiceInterface
}

func NewFlightHandler(s FlightServiceInterface, a AvailabilityServiceInterface) *FlightHandler {
	return &FlightHandler{service: s, availability: a}
}

type CreateFlightRequest struct {
	FlightNumber string    `json:"flight_number" validate:"required"`
	Origin       string    `json:"origin" validate:"required"`
	Destination  string    `json:"destination" validate:"required"`
	DepartureAt  time.Time `json:"departure_at" validate:"required"`
	Capacity     int       `json:"capacity" validate:"required,gt=0"`
}

type FlightResponse struct {
	ID           string    `json:"id"`
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	DepartureAt  time.Time `json:"departure_at"`
	Capacity     int       `json:"capacity"`
	Booked       int       `json:"booked"`
	Available    int       `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	FlightID  string `json:"flight_id"`
	Available int    `json:"available"`
}

func toFlightResponse(f *flight.Flight) FlightResponse {
	return FlightResponse{
		ID: f.ID, FlightNumber: f.FlightNumber,
		Origin: f.Origin, Destination: f.Destination, DepartureAt: f.DepartureAt,
		Capacity: f.Capacity, Booked: f.Booked, Available: f.Available(),
		CreatedAt: f.CreatedAt,
	}
}

// Create registers a new flight with a fixed capacity.
func (h *FlightHandler) Create(c echo.Context) error {
	var req CreateFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	f, err := h.service.CreateFlight(c.Request().Context(), application.CreateFlightInput{
		FlightNumber: req.FlightNumber,
		Origin:       req.Origin,
		Destination:  req.Destination,
		DepartureAt:  req.DepartureAt,
		Capacity:     req.Capacity,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, toFlightResponse(f))
}

// GetByID returns one flight.
func (h *FlightHandler) GetByID(c echo.Context) error {
	f, err := h.service.GetFlight(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, flight.ErrFlightNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toFlightResponse(f))
}

// List returns flights ordered by departure time.
func (h *FlightHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	flights, err := h.service.ListFlights(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]FlightResponse, len(flights))
	for i, f := range flights {
		resp[i] = toFlightResponse(f)
	}
	return c.JSON(http.StatusOK, resp)
}

// Availability returns the cached available-seat count.
func (h *FlightHandler) Availability(c echo.Context) error {
	id := c.Param("id")
	available, err := h.availability.GetAvailableSeats(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, flight.ErrFlightNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, AvailabilityResponse{FlightID: id, Available: available})
}
