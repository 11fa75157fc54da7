package driving

import (
	"context"

	"github.com/wethelder/wethelder/internal/core/domain"
)

// AnswerChunkFunc receives one chunk of a streamed answer. Returning
// an error stops the stream; the accumulated partial answer is still
// persisted best-effort.
type AnswerChunkFunc func(chunk string) error

// AskRequest is one legal question.
type AskRequest struct {
	// Query is the user's question plus optional context.
	Query domain.SearchQuery

	// ClientKey identifies the caller for quota accounting,
	// normally the client IP. Empty skips rate limiting
	// (authenticated callers).
	ClientKey string
}

// AskResult is the answered question.
type AskResult struct {
	// Answer is the generated text. On a mid-stream disconnect it
	// holds whatever accumulated before the stream closed.
	Answer string `json:"answer"`

	// Search carries the ranked references and reliability label
	// that ground the answer.
	Search SearchResult `json:"search"`

	// Partial marks answers cut short by a client disconnect.
	Partial bool `json:"partial,omitempty"`
}

// AskService answers legal questions grounded in the pipeline's
// references.
type AskService interface {
	// Ask produces a complete answer.
	Ask(ctx context.Context, req AskRequest) (AskResult, error)

	// AskStream delivers the answer chunk by chunk through fn and
	// returns the final (possibly partial) result.
	AskStream(ctx context.Context, req AskRequest, fn AnswerChunkFunc) (AskResult, error)
}
