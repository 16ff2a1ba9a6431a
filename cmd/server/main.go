// Package main is the entry point for the flight ranking service.
//
//	@title						Flight Ranking API
//	@version					1.0.0
//	@description				Scores, ranks and explains flight options against a traveller's preference profile.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-ranking-engine/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-ranking-engine/docs"

	// Application layers
	flighthttp "github.com/flight-search/flight-ranking-engine/internal/adapter/http"
	"github.com/flight-search/flight-ranking-engine/internal/adapter/http/middleware"
	"github.com/flight-search/flight-ranking-engine/internal/adapter/refdata"
	"github.com/flight-search/flight-ranking-engine/internal/config"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-ranking-engine/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Int("max_candidates", cfg.Ranking.MaxCandidates).
		Dur("request_timeout", cfg.Ranking.RequestTimeout).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupLogger builds the application logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.EnableCaller = cfg.IsDevelopment()

	l := logger.New(logCfg)
	logger.SetGlobal(l)
	return l
}

// setupRoutes wires reference data, the ranking engine and the HTTP handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	airlines := refdata.DefaultAirlineDirectory()
	airports := refdata.DefaultAirportDirectory()

	log.Info().
		Int("airlines", len(airlines.Airlines())).
		Int("airports", airports.Len()).
		Msg("Reference data loaded")

	// Initialize use case with config
	ucConfig := &usecase.Config{
		MaxCandidates:        cfg.Ranking.MaxCandidates,
		MaxPreferenceEntries: cfg.Ranking.MaxPreferenceEntries,
		BatchMaxSearches:     cfg.Ranking.BatchMaxSearches,
		BatchConcurrency:     cfg.Ranking.BatchConcurrency,
	}
	rankingUseCase := usecase.NewFlightRankingUseCase(airlines, airports, timeutil.NewRealClock(), log, ucConfig)

	// Initialize handler
	flightHandler := flighthttp.NewFlightHandler(rankingUseCase,
		flighthttp.WithRequestTimeout(cfg.Ranking.RequestTimeout),
		flighthttp.WithReferenceStats(flighthttp.ReferenceStats{
			Airlines: len(airlines.Airlines()),
			Airports: airports.Len(),
		}),
	)

	flighthttp.RegisterRoutes(e, flightHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
