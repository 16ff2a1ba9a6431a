package domain

// RankResponse is the ranked result of one search.
type RankResponse struct {
	// Metadata contains information about the ranking execution
	Metadata RankMetadata `json:"metadata"`

	// Results is the authoritative display order; consumers must not re-sort
	Results []ScoredFlight `json:"results"`
}

// RankMetadata contains metadata about the ranking execution.
type RankMetadata struct {
	// SearchID correlates logs and responses for one ranking call
	SearchID string `json:"searchId"`

	// TotalCandidates is the number of candidates received
	TotalCandidates int `json:"totalCandidates"`

	// FilteredOut is the number of candidates removed by filters before scoring
	FilteredOut int `json:"filteredOut"`

	// TotalResults is the number of ranked results returned
	TotalResults int `json:"totalResults"`

	// AvoidedResults is the number of results in the avoided partition
	AvoidedResults int `json:"avoidedResults"`

	// RankingTimeMs is the wall-clock ranking duration in milliseconds
	RankingTimeMs int64 `json:"rankingTimeMs"`
}

// NewRankResponse creates a RankResponse, filling counts from the results.
func NewRankResponse(results []ScoredFlight, metadata RankMetadata) RankResponse {
	if results == nil {
		results = []ScoredFlight{}
	}
	metadata.TotalResults = len(results)

	avoided := 0
	for _, r := range results {
		if r.IsAvoidedAirline {
			avoided++
		}
	}
	metadata.AvoidedResults = avoided

	return RankResponse{
		Metadata: metadata,
		Results:  results,
	}
}
