package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/application"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/booking"
	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/flight"
)

type BookingHandler struct {
	service ReservationServiceInterface
}

func NewBookingHandler(s ReservationServiceInterface) *BookingHandler {
	return &BookingHandler{service: s}
}

type CreateBookingRequest struct {
	FlightID         string `json:"flight_id" validate:"required"`
	SeatCount        int    `json:"seat_count" validate:"required,gt=0"`
	PassengerName    string `json:"passenger_name" validate:"required"`
	PassengerContact string `json:"passenger_contact" validate:"required,email"`
}

type BookingResponse struct {
	ID               string    `json:"id"`
	FlightID         string    `json:"flight_id"`
	PassengerName    string    `json:"passenger_name"`
	PassengerContact string    `json:"passenger_contact"`
	SeatCount        int       `json:"seat_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// InsufficientSeatsResponse carries the availability observed at the final
// attempt so the client can offer it to the user.
type InsufficientSeatsResponse struct {
	Error     string `json:"error"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

func toBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID, FlightID: b.FlightID,
		PassengerName: b.Passenger.Name, PassengerContact: b.Passenger.Contact,
		SeatCount: b.SeatCount, CreatedAt: b.CreatedAt,
	}
}

// Create books seats on a flight.
func (h *BookingHandler) Create(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	b, err := h.service.Reserve(c.Request().Context(), application.ReserveInput{
		FlightID:         req.FlightID,
		SeatCount:        req.SeatCount,
		PassengerName:    req.PassengerName,
		PassengerContact: req.PassengerContact,
	})
	if err != nil {
		switch {
		case errors.Is(err, flight.ErrFlightNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, booking.ErrBookingContention):
			// Retryable by the client; not a capacity problem.
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		default:
			if ise, ok := flight.IsInsufficientSeats(err); ok {
				return c.JSON(http.StatusConflict, InsufficientSeatsResponse{
					Error:     ise.Error(),
					Available: ise.Available,
					Requested: ise.Requested,
				})
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, toBookingResponse(b))
}

// GetByID returns one booking.
func (h *BookingHandler) GetByID(c echo.Context) error {
	b, err := h.service.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toBookingResponse(b))
}

// ListByFlight returns all bookings for one flight.
func (h *BookingHandler) ListByFlight(c echo.Context) error {
	bookings, err := h.service.GetFlightBookings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = toBookingResponse(b)
	}
	return c.JSON(http.StatusOK, resp)
}
