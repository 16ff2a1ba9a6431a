package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight ranking API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the
// versioned API group only. The health check stays unversioned and bare.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/rank", h.RankFlights)
	flights.POST("/rank/batch", h.RankBatch)

	airlines := api.Group("/airlines")
	airlines.POST("/resolve", h.ResolveAirline)
}
