// Package integration provides helpers and integration tests for the flight ranking system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, the ranking use case and reference data.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-search/flight-ranking-engine/internal/adapter/http"
	"github.com/flight-search/flight-ranking-engine/internal/adapter/http/response"
	"github.com/flight-search/flight-ranking-engine/internal/adapter/refdata"
	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-ranking-engine/internal/usecase"
	"github.com/flight-search/flight-ranking-engine/test/testutil"
)

const (
	rankPath    = "/api/v1/flights/rank"
	batchPath   = "/api/v1/flights/rank/batch"
	resolvePath = "/api/v1/airlines/resolve"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.FlightRankingUseCase, opts ...httpAdapter.HandlerOption) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewFlightHandler(uc, opts...)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// A []byte body is sent verbatim; anything else is JSON-encoded.
func (ts *TestServer) Do(req Request) Response {
	var bodyBytes []byte
	switch b := req.Body.(type) {
	case nil:
	case []byte:
		bodyBytes = b
	default:
		bodyBytes, _ = json.Marshal(b)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(bodyBytes))

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// RankRequest posts a ranking request body.
func (ts *TestServer) RankRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: rankPath, Body: body})
}

// BatchRequest posts a batch ranking request body.
func (ts *TestServer) BatchRequest(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: batchPath, Body: body})
}

// ResolveRequest asks the server to resolve a raw airline string.
func (ts *TestServer) ResolveRequest(airline string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   resolvePath,
		Body:   httpAdapter.ResolveAirlineRequest{Airline: airline},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseRankResponse parses the response body as a RankResponseDTO.
func (r Response) ParseRankResponse() (*httpAdapter.RankResponseDTO, error) {
	var resp httpAdapter.RankResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseBatchResponse parses the response body as a RankBatchResponseDTO.
func (r Response) ParseBatchResponse() (*httpAdapter.RankBatchResponseDTO, error) {
	var resp httpAdapter.RankBatchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an error detail.
func (r Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// RankBody is a helper struct for building ranking request bodies.
type RankBody struct {
	Candidates  []domain.FlightCandidate   `json:"candidates"`
	Preferences domain.PreferenceProfile   `json:"preferences"`
	Passengers  *httpAdapter.PassengersDTO `json:"passengers,omitempty"`
	CabinClass  string                     `json:"cabinClass,omitempty"`
	Filters     *httpAdapter.FilterDTO     `json:"filters,omitempty"`
}

// DefaultRankBody returns a valid ranking body: two nonstops and one connection via DEN.
func DefaultRankBody() RankBody {
	return RankBody{
		Candidates: []domain.FlightCandidate{
			testutil.Nonstop("b6", 289, "B6", "2026-04-10T08:15:00", 385),
			testutil.Nonstop("dl", 312, "DL", "2026-04-10T11:00:00", 375),
			testutil.OneStop("ua", 241, "UA", "DEN", "2026-04-10T06:00:00", 80),
		},
	}
}

// CreateUseCase creates a use case over the built-in reference data with a fixed clock.
func CreateUseCase() usecase.FlightRankingUseCase {
	return CreateUseCaseWithConfig(nil)
}

// CreateUseCaseWithConfig creates a use case with custom limits.
func CreateUseCaseWithConfig(config *usecase.Config) usecase.FlightRankingUseCase {
	return usecase.NewFlightRankingUseCase(
		refdata.DefaultAirlineDirectory(),
		refdata.DefaultAirportDirectory(),
		testutil.FixedClock(),
		logger.Nop(),
		config,
	)
}

// CreateUseCaseWithDirectory creates a use case over custom reference data.
func CreateUseCaseWithDirectory(airlines domain.AirlineDirectory, airports domain.AirportDirectory) usecase.FlightRankingUseCase {
	return usecase.NewFlightRankingUseCase(airlines, airports, testutil.FixedClock(), logger.Nop(), nil)
}

// DefaultTimeout is a generous per-request bound for handler tests.
const DefaultTimeout = 2 * time.Second
