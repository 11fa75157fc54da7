package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates the caller exhausted its daily quota.
	ErrRateLimited = errors.New("rate limited")

	// ErrLLMUnavailable indicates the text-completion service is not
	// configured or unreachable. This is the only dependency whose
	// failure fails the whole request.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrSearchUnavailable indicates the external web-search service
	// is not configured. Callers degrade confidence instead of
	// failing.
	ErrSearchUnavailable = errors.New("web search unavailable")

	// ErrCaseLawUnavailable indicates the case-law API is not
	// configured or unreachable.
	ErrCaseLawUnavailable = errors.New("case-law service unavailable")
)
