// Package http provides the HTTP handler layer for the flight ranking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-ranking-engine/internal/adapter/http/response"
	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/usecase"
)

// ReferenceStats reports the size of the loaded reference data for health checks.
type ReferenceStats struct {
	Airlines int
	Airports int
}

// FlightHandler handles HTTP requests for flight ranking endpoints.
type FlightHandler struct {
	useCase        usecase.FlightRankingUseCase
	requestTimeout time.Duration
	stats          ReferenceStats
}

// HandlerOption configures a FlightHandler.
type HandlerOption func(*FlightHandler)

// WithRequestTimeout bounds each ranking call. Zero leaves the request context untouched.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *FlightHandler) {
		h.requestTimeout = d
	}
}

// WithReferenceStats sets the counts reported by the health endpoint.
func WithReferenceStats(stats ReferenceStats) HandlerOption {
	return func(h *FlightHandler) {
		h.stats = stats
	}
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightRankingUseCase, opts ...HandlerOption) *FlightHandler {
	h := &FlightHandler{
		useCase: uc,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RankFlights handles POST /api/v1/flights/rank
//
// @Summary Rank flight options
// @Description Score, rank, categorize and explain the candidates of one search against a preference profile
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SwaggerRankFlightsRequest true "Candidates and preferences"
// @Success 200 {object} RankResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Ranking timed out"
// @Router /api/v1/flights/rank [post]
func (h *FlightHandler) RankFlights(c echo.Context) error {
	var req RankFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx, cancel := h.rankContext(c)
	defer cancel()

	result, err := h.useCase.Rank(ctx, ToRankRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.RankResults(c, ToRankResponseDTO(result))
}

// RankBatch handles POST /api/v1/flights/rank/batch
//
// @Summary Rank several searches
// @Description Rank independent searches concurrently; results keep request order
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SwaggerRankBatchRequest true "Searches to rank"
// @Success 200 {object} RankBatchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Ranking timed out"
// @Router /api/v1/flights/rank/batch [post]
func (h *FlightHandler) RankBatch(c echo.Context) error {
	var req RankBatchRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx, cancel := h.rankContext(c)
	defer cancel()

	results, err := h.useCase.RankBatch(ctx, ToRankRequests(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.RankResults(c, ToRankBatchResponseDTO(results))
}

// ResolveAirline handles POST /api/v1/airlines/resolve
//
// @Summary Resolve an airline string
// @Description Return the canonical airline identity for a code, name, alias or flight number
// @Tags airlines
// @Accept json
// @Produce json
// @Param request body ResolveAirlineRequest true "Raw airline string"
// @Success 200 {object} ResolveAirlineResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/airlines/resolve [post]
func (h *FlightHandler) ResolveAirline(c echo.Context) error {
	var req ResolveAirlineRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	identity := h.useCase.ResolveAirline(req.Airline)
	return response.OK(c, &ResolveAirlineResponseDTO{
		Input:   req.Airline,
		Airline: ToAirlineDTO(identity, req.Airline),
	})
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c, h.stats.Airlines, h.stats.Airports)
}

func (h *FlightHandler) rankContext(c echo.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request().Context()
	if h.requestTimeout > 0 {
		return context.WithTimeout(ctx, h.requestTimeout)
	}
	return ctx, func() {}
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	if validationErrs, ok := asValidationErrors(err); ok {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrNoCandidates),
		errors.Is(err, domain.ErrTooManyCandidates),
		errors.Is(err, domain.ErrBatchTooLarge):
		return response.ValidationErrorWithMessage(c, err.Error())

	default:
		return response.InternalServerError(c)
	}
}
