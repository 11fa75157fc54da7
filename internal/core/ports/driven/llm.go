package driven

import "context"

// LLMService provides text-completion operations for answering legal
// questions. Implementations speak the OpenAI chat-completion wire
// format (OpenAI, DeepSeek).
type LLMService interface {
	// Chat conducts a multi-turn conversation and returns the full
	// assistant reply.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// Stream conducts a conversation and delivers the reply chunk by
	// chunk through fn. It returns the accumulated text, including
	// everything delivered before a mid-stream failure or cancel, so
	// callers can persist partial answers best-effort.
	Stream(ctx context.Context, messages []ChatMessage, opts ChatOptions, fn StreamFunc) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight
	// request that runs no inference.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// StreamFunc receives one text chunk of a streamed reply. Returning
// an error aborts the stream.
type StreamFunc func(chunk string) error

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
