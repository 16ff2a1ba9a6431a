// Package main is the rankctl operator CLI. It runs the ranking engine
// against local files and shows how airline strings resolve.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flight-search/flight-ranking-engine/internal/adapter/refdata"
	"github.com/flight-search/flight-ranking-engine/internal/config"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-ranking-engine/internal/usecase"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rankctl",
	Short: "Rank flight candidates from the command line",
	Long: `rankctl runs the flight ranking engine outside the HTTP service.

It reads candidates from a JSON file and an optional YAML preference
profile, and prints the ranked results as a table or as the same JSON
the API returns. Limits come from the RANKING_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		logCfg := logger.DefaultConfig()
		logCfg.Level = cfg.Logging.Level
		logCfg.Format = "console"
		logCfg.ServiceName = "rankctl"
		log = logger.NewWithOutput(logCfg, cmd.ErrOrStderr())

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newUseCase builds the ranking engine over the built-in reference data.
func newUseCase(clock timeutil.Clock) usecase.FlightRankingUseCase {
	return usecase.NewFlightRankingUseCase(
		refdata.DefaultAirlineDirectory(),
		refdata.DefaultAirportDirectory(),
		clock,
		log,
		&usecase.Config{
			MaxCandidates:        cfg.Ranking.MaxCandidates,
			MaxPreferenceEntries: cfg.Ranking.MaxPreferenceEntries,
			BatchMaxSearches:     cfg.Ranking.BatchMaxSearches,
			BatchConcurrency:     cfg.Ranking.BatchConcurrency,
		},
	)
}
