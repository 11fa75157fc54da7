package driven

import (
	"context"

	"github.com/wethelder/wethelder/internal/core/domain"
)

// QueryLogStore persists the final question/answer/sources tuple.
// The pipeline only appends; history and statistics surfaces own the
// reads.
type QueryLogStore interface {
	// Append stores one answered question. Best effort: a partial
	// answer after a client disconnect is stored as-is.
	Append(ctx context.Context, record domain.QueryRecord) error

	// Close releases resources.
	Close() error
}
