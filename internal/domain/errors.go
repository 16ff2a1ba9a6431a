package domain

import "errors"

// Sentinel errors returned by the ranking engine and its adapters.
var (
	// ErrInvalidRequest indicates a structurally invalid ranking request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoCandidates indicates a ranking request without candidates.
	ErrNoCandidates = errors.New("no flight candidates to rank")

	// ErrTooManyCandidates indicates a batch above the configured size bound.
	ErrTooManyCandidates = errors.New("too many flight candidates")

	// ErrBatchTooLarge indicates a batch request with too many searches.
	ErrBatchTooLarge = errors.New("too many searches in batch")
)
