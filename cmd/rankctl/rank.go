package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	flighthttp "github.com/flight-search/flight-ranking-engine/internal/adapter/http"
	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-ranking-engine/internal/usecase"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates from a JSON file",
	Long: `Rank the candidates of one search against a preference profile.

The candidates file holds either a JSON array of candidates or an object
with a "candidates" array, in the same shape the API accepts. The profile
is YAML with snake_case keys, for example:

  prefer_nonstop: true
  preferred_airlines: [JetBlue, DL]
  avoided_airlines: [Spirit]
  preferred_departure_times: [morning, afternoon]
  amenity_requirements:
    wifi: must_have

Examples:
  # Rank with default preferences
  rank --candidates flights.json

  # Family of three, premium economy, as JSON
  rank --candidates flights.json --profile family.yaml --passengers 2,1,0 --cabin premium_economy --format json`,
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.String("candidates", "", "path to a JSON candidates file")
	f.String("profile", "", "path to a YAML preference profile (default: no preferences)")
	f.String("passengers", "", "passenger counts as adults,children,infants (e.g., 2,1,0)")
	f.String("cabin", "", "cabin class override (economy, premium_economy, business, first)")
	f.String("format", "table", "output format: table or json")
	f.String("today", "", "reference date YYYY-MM-DD for booking advice (default: now)")
	_ = rankCmd.MarkFlagRequired("candidates")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	candidatesPath, _ := cmd.Flags().GetString("candidates")
	profilePath, _ := cmd.Flags().GetString("profile")
	passengers, _ := cmd.Flags().GetString("passengers")
	cabin, _ := cmd.Flags().GetString("cabin")
	format, _ := cmd.Flags().GetString("format")
	today, _ := cmd.Flags().GetString("today")

	if format != "table" && format != "json" {
		return fmt.Errorf("rank: --format must be table or json (got %q)", format)
	}
	if !domain.IsValidCabin(cabin) {
		return fmt.Errorf("rank: unknown cabin class %q", cabin)
	}

	candidates, err := loadCandidates(candidatesPath)
	if err != nil {
		return err
	}
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}
	pax, err := parsePassengers(passengers)
	if err != nil {
		return err
	}
	clock, err := clockFor(today)
	if err != nil {
		return err
	}

	req := usecase.RankRequest{
		Candidates: candidates,
		Profile:    profile,
		Passengers: pax,
		CabinClass: cabin,
	}

	resp, err := newUseCase(clock).Rank(ctx, req)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	log.Debug().
		Str("search_id", resp.Metadata.SearchID).
		Int("results", resp.Metadata.TotalResults).
		Msg("ranking finished")

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, flighthttp.ToRankResponseDTO(resp))
	}
	return printRankTable(out, resp)
}

// loadCandidates reads and validates a candidates file.
func loadCandidates(path string) ([]domain.FlightCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}

	var candidates []domain.FlightCandidate
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &candidates)
	} else {
		var wrapped struct {
			Candidates []domain.FlightCandidate `json:"candidates"`
		}
		err = json.Unmarshal(trimmed, &wrapped)
		candidates = wrapped.Candidates
	}
	if err != nil {
		return nil, fmt.Errorf("parse candidates %s: %w", path, err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("parse candidates %s: %w", path, domain.ErrNoCandidates)
	}

	seen := make(map[string]bool, len(candidates))
	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		if seen[candidates[i].ID] {
			return nil, fmt.Errorf("candidate %d: %w: duplicate id %q", i, domain.ErrInvalidRequest, candidates[i].ID)
		}
		seen[candidates[i].ID] = true
	}
	return candidates, nil
}

// loadProfile reads a YAML preference profile. An empty path yields the zero profile.
func loadProfile(path string) (domain.PreferenceProfile, error) {
	var profile domain.PreferenceProfile
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := profile.Validate(); err != nil {
		return profile, fmt.Errorf("profile %s: %w", path, err)
	}
	return profile, nil
}

// parsePassengers parses "adults[,children[,infants]]". Empty means the default party.
func parsePassengers(s string) (*domain.PassengerCounts, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return nil, fmt.Errorf("passengers: expected adults,children,infants (got %q)", s)
	}

	counts := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("passengers: %q is not a number", p)
		}
		counts[i] = n
	}

	pax := &domain.PassengerCounts{Adults: counts[0], Children: counts[1], Infants: counts[2]}
	if err := pax.Validate(); err != nil {
		return nil, err
	}
	return pax, nil
}

// clockFor pins the clock to a date when one is given.
func clockFor(date string) (timeutil.Clock, error) {
	if date == "" {
		return timeutil.NewRealClock(), nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("today: expected YYYY-MM-DD (got %q)", date)
	}
	return timeutil.NewFixedClock(t.Add(12 * time.Hour)), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printRankTable(w io.Writer, resp *domain.RankResponse) error {
	if len(resp.Results) == 0 {
		_, err := fmt.Fprintf(w, "No results (%d of %d candidates filtered out).\n",
			resp.Metadata.FilteredOut, resp.Metadata.TotalCandidates)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCATEGORY\tAIRLINE\tSTOPS\tDURATION\tPRICE\tEST. TOTAL\tSCORE\tDELAY RISK")
	for i := range resp.Results {
		f := &resp.Results[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s %.2f\t%s\t%d\t%s\n",
			f.Rank,
			f.RankCategory,
			f.PrimaryAirline.DisplayName(f.FlightCandidate.PrimaryAirline()),
			f.TotalStops(),
			domain.FormatDuration(f.TotalDurationMinutes),
			f.Currency, f.Price,
			f.EstimatedTotalPrice.StringFixed(2),
			f.Breakdown.Total,
			f.DelayRisk,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	for i := range resp.Results {
		fmt.Fprintln(w, resp.Results[i].Explanation)
	}

	_, err := fmt.Fprintf(w, "\nRanked %d of %d candidates (%d filtered out) in %dms, search %s\n",
		resp.Metadata.TotalResults, resp.Metadata.TotalCandidates, resp.Metadata.FilteredOut,
		resp.Metadata.RankingTimeMs, resp.Metadata.SearchID)
	return err
}
