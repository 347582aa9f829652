package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware installs the common middleware stack.
func SetupMiddleware(e *echo.Echo) {
	// Request ID
	e.Use(middleware.RequestID())

	// Structured request logging (zap)
	e.Use(RequestLogger())

	// Panic recovery
	e.Use(middleware.Recover())

	// CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))
}
