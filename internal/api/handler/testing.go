package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/api"
)

// NewTestEcho creates an Echo instance configured for handler tests.
func NewTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}
