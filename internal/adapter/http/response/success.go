package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// Airlines and Airports report the size of the loaded reference data
	Airlines int `json:"airlines,omitempty"`
	Airports int `json:"airports,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context, airlines, airports int) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "ok",
		Airlines: airlines,
		Airports: airports,
	})
}

// RankResults writes a 200 OK response with ranked results.
func RankResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
