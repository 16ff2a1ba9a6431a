package http

import (
	"time"

	"github.com/flight-search/flight-ranking-engine/internal/domain"
	"github.com/flight-search/flight-ranking-engine/internal/usecase"
)

// ToRankRequest converts a validated RankFlightsRequest to a usecase.RankRequest.
func ToRankRequest(req *RankFlightsRequest) usecase.RankRequest {
	rr := usecase.RankRequest{
		Candidates:   req.Candidates,
		Profile:      req.Preferences,
		PriceContext: req.PriceContext,
		CabinClass:   req.CabinClass,
		Filters:      ToDomainFilters(req.Filters),
	}
	if req.Passengers != nil {
		rr.Passengers = &domain.PassengerCounts{
			Adults:   req.Passengers.Adults,
			Children: req.Passengers.Children,
			Infants:  req.Passengers.Infants,
		}
	}
	return rr
}

// ToRankRequests converts every search of a batch request.
func ToRankRequests(req *RankBatchRequest) []usecase.RankRequest {
	out := make([]usecase.RankRequest, len(req.Searches))
	for i := range req.Searches {
		out[i] = ToRankRequest(&req.Searches[i])
	}
	return out
}

// ToDomainFilters converts a FilterDTO to domain.FilterOptions.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}

	opts := &domain.FilterOptions{
		MaxPrice: dto.MaxPrice,
		MaxStops: dto.MaxStops,
		Airlines: dto.Airlines,
	}

	if dto.DepartureTimeRange != nil {
		opts.DepartureTimeRange = toDomainTimeRange(dto.DepartureTimeRange)
	}

	if dto.DurationRange != nil {
		opts.DurationRange = toDomainDurationRange(dto.DurationRange)
	}

	if opts.IsEmpty() {
		return nil
	}
	return opts
}

// toDomainTimeRange converts a TimeRangeDTO to domain.TimeRange.
func toDomainTimeRange(dto *TimeRangeDTO) *domain.TimeRange {
	if dto == nil || dto.Start == "" || dto.End == "" {
		return nil
	}

	startTime, err := time.Parse("15:04", dto.Start)
	if err != nil {
		return nil
	}

	endTime, err := time.Parse("15:04", dto.End)
	if err != nil {
		return nil
	}

	return &domain.TimeRange{
		Start: startTime,
		End:   endTime,
	}
}

// toDomainDurationRange converts a DurationRangeDTO to domain.DurationRange.
func toDomainDurationRange(dto *DurationRangeDTO) *domain.DurationRange {
	if dto == nil || (dto.MinMinutes == nil && dto.MaxMinutes == nil) {
		return nil
	}

	return &domain.DurationRange{
		MinMinutes: dto.MinMinutes,
		MaxMinutes: dto.MaxMinutes,
	}
}
