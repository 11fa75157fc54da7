// Package deepseek provides an LLM service adapter for the DeepSeek
// API. DeepSeek speaks the OpenAI chat-completion wire format, so
// this is a thin wrapper over the openai adapter with DeepSeek
// defaults.
package deepseek

import (
	"time"

	"github.com/wethelder/wethelder/internal/adapters/driven/llm/openai"
)

// Default configuration values.
const (
	DefaultBaseURL  = "https://api.deepseek.com/v1"
	DefaultLLMModel = "deepseek-chat"
)

// Config holds configuration for the DeepSeek LLM service.
type Config struct {
	// APIKey is the DeepSeek API key (required).
	APIKey string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// Model is the chat model (default: deepseek-chat).
	Model string

	// Timeout is the request timeout.
	Timeout time.Duration
}

// NewLLMService creates a DeepSeek LLM service.
func NewLLMService(cfg Config) (*openai.LLMService, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}

	return openai.NewLLMService(openai.LLMConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
}
