package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/logger"
)

const rankPath = "/api/v1/flights/rank"

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	c, rec := newContext(http.MethodPost, rankPath)

	var ctxRequestID string
	handler := RequestID()(func(c echo.Context) error {
		ctxRequestID = logger.RequestIDFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")
	assert.Equal(t, reqID, GetRequestID(c))
	assert.Equal(t, reqID, ctxRequestID, "request context should carry the ID for engine logs")
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "caller supplied id", incoming: "search-ui-12345", wantSame: true},
		{name: "oversized id is replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, rankPath)
			c.Request().Header.Set(RequestIDHeader, tt.incoming)

			handler := RequestID()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(RequestIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.Len(t, got, 36)
			}
			assert.Equal(t, got, GetRequestID(c))
		})
	}
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/health")
	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf).With().Timestamp().Logger()

	c, _ := newContext(http.MethodPost, rankPath+"?debug=1")
	c.Request().Header.Set("User-Agent", "TestAgent/1.0")
	c.Request().Header.Set("X-Real-IP", "192.168.1.100")
	c.Set("request_id", "test-req-id-123")

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, rankPath, entry["path"])
	assert.Equal(t, "debug=1", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Contains(t, entry, "duration_ms")
	assert.Contains(t, entry, "bytes_in")
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelByStatusAndPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{name: "success", path: rankPath, status: http.StatusOK, wantLevel: "info"},
		{name: "validation failure", path: rankPath, status: http.StatusBadRequest, wantLevel: "warn"},
		{name: "server error", path: rankPath, status: http.StatusInternalServerError, wantLevel: "error"},
		{name: "health probe", path: "/health", status: http.StatusOK, wantLevel: "debug"},
		{name: "swagger asset", path: "/swagger/index.html", status: http.StatusOK, wantLevel: "debug"},
		{name: "failing health probe is not quiet", path: "/health", status: http.StatusServiceUnavailable, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log := zerolog.New(&logBuf)

			c, _ := newContext(http.MethodGet, tt.path)
			handler := RequestLogger(log)(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entries := decodeLogLines(t, &logBuf)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0]["level"])
			assert.Equal(t, float64(tt.status), entries[0]["status"])
		})
	}
}

func TestRequestLogger_HandlesHandlerError(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, rec := newContext(http.MethodPost, rankPath)
	handler := RequestLogger(log)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "nope")
	})

	require.NoError(t, handler(c), "error should be handled by echo, not returned")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(http.StatusMethodNotAllowed), entries[0]["status"])
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500OnPanic(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, rec := newContext(http.MethodPost, rankPath)
	c.Set("request_id", "panic-test-id")

	handler := Recover(log)(func(c echo.Context) error {
		panic("scorer exploded")
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body["code"])
	assert.Equal(t, "An unexpected error occurred", body["message"])
	assert.NotContains(t, rec.Body.String(), "scorer exploded", "panic details must not leak")
}

func TestRecover_LogsPanicWithStackTrace(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, _ := newContext(http.MethodPost, rankPath)
	c.Set("request_id", "stack-test-id")

	handler := Recover(log)(func(c echo.Context) error {
		panic("stack trace test panic")
	})
	_ = handler(c)

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "stack-test-id", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, rankPath, entry["path"])
	assert.Equal(t, "stack trace test panic", entry["panic"])
	assert.Equal(t, "Panic recovered", entry["message"])

	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
	assert.LessOrEqual(t, len(stack), DefaultRecoveryConfig().StackSize)
}

func TestRecover_HandlesErrorPanic(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, rec := newContext(http.MethodPost, rankPath)
	handler := Recover(log)(func(c echo.Context) error {
		var scores []int
		_ = scores[10]
		return nil
	})

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logBuf.String(), "index out of range")
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	c, rec := newContext(http.MethodPost, rankPath)
	handler := Recover(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ranked")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ranked", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

func TestRecoverWithConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    RecoveryConfig
		wantStack bool
		maxStack  int
	}{
		{name: "stack disabled", config: RecoveryConfig{DisablePrintStack: true}},
		{name: "stack truncated", config: RecoveryConfig{StackSize: 64}, wantStack: true, maxStack: 64},
		{name: "stack unbounded", config: RecoveryConfig{}, wantStack: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log := zerolog.New(&logBuf)

			c, _ := newContext(http.MethodPost, rankPath)
			handler := RecoverWithConfig(log, tt.config)(func(c echo.Context) error {
				panic("config test")
			})
			_ = handler(c)

			entries := decodeLogLines(t, &logBuf)
			require.Len(t, entries, 1)

			stack, ok := entries[0]["stack"].(string)
			assert.Equal(t, tt.wantStack, ok)
			if tt.maxStack > 0 {
				assert.LessOrEqual(t, len(stack), tt.maxStack)
			}
		})
	}
}

// =====================================================
// Setup Helper Tests
// =====================================================

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	e := echo.New()
	Setup(e, log)

	var seenRequestID string
	e.POST(rankPath, func(c echo.Context) error {
		seenRequestID = logger.RequestIDFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, rankPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID)
	assert.Equal(t, reqID, seenRequestID)

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	assert.Equal(t, reqID, entries[0]["request_id"])
}

func TestSetup_RecoversPanicWithLogging(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	e := echo.New()
	SetupWithConfig(e, log, RecoveryConfig{DisablePrintStack: true})
	e.POST(rankPath, func(c echo.Context) error {
		panic("setup panic test")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, rankPath, nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var panicEntry, requestEntry map[string]interface{}
	for _, entry := range decodeLogLines(t, &logBuf) {
		switch entry["message"] {
		case "Panic recovered":
			panicEntry = entry
		case "HTTP request":
			requestEntry = entry
		}
	}
	require.NotNil(t, panicEntry)
	require.NotNil(t, requestEntry)
	assert.NotContains(t, panicEntry, "stack")
	assert.Equal(t, float64(500), requestEntry["status"])
	assert.Equal(t, panicEntry["request_id"], requestEntry["request_id"])
}

func TestChain_ReturnsMiddlewareSlice(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)

	chain := Chain(log)
	assert.Len(t, chain, 3)

	e := echo.New()
	api := e.Group("/api/v1", chain...)
	api.POST("/flights/rank", func(c echo.Context) error {
		return c.String(http.StatusOK, "chain test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, rankPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
