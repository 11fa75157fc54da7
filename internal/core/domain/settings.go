package domain

const unknownDescription = "Unknown"

// LLMProvider identifies a text-completion service provider.
type LLMProvider string

// Available LLM providers. Both speak the OpenAI chat-completion
// wire format; DeepSeek differs only in base URL and default model.
const (
	// LLMProviderOpenAI is the OpenAI cloud API.
	LLMProviderOpenAI LLMProvider = "openai"

	// LLMProviderDeepSeek is the DeepSeek cloud API.
	LLMProviderDeepSeek LLMProvider = "deepseek"
)

// IsValid returns true if the provider is recognised.
func (p LLMProvider) IsValid() bool {
	switch p {
	case LLMProviderOpenAI, LLMProviderDeepSeek:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p LLMProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p LLMProvider) Description() string {
	switch p {
	case LLMProviderOpenAI:
		return "OpenAI (cloud)"
	case LLMProviderDeepSeek:
		return "DeepSeek (cloud)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds text-completion provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider LLMProvider

	// Model is the chat model name.
	Model string

	// BaseURL overrides the provider's API endpoint.
	BaseURL string

	// APIKey is the API key.
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	return l.Provider.IsValid() && l.APIKey != ""
}

// WebSearchSettings holds Google Custom Search configuration.
// Missing credentials are not an error: the pipeline degrades to
// catalog-only results with lowered confidence.
type WebSearchSettings struct {
	// APIKey is the Google API key.
	APIKey string

	// SearchEngineID is the Custom Search Engine identifier.
	SearchEngineID string

	// MaxResults caps the number of hits per call.
	MaxResults int
}

// IsConfigured returns true if the search credentials are present.
func (w WebSearchSettings) IsConfigured() bool {
	return w.APIKey != "" && w.SearchEngineID != ""
}

// CaseLawSettings holds the case-law API configuration.
type CaseLawSettings struct {
	// BaseURL is the case-law API endpoint.
	BaseURL string

	// MaxResults caps the number of documents per call.
	MaxResults int
}

// ServerSettings holds the HTTP server configuration.
type ServerSettings struct {
	// ListenAddr is the address the HTTP API binds to.
	ListenAddr string

	// AnonymousDailyQuota is the number of questions an
	// unauthenticated IP may ask per 24-hour window.
	AnonymousDailyQuota int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// LLM holds text-completion provider settings.
	LLM LLMSettings

	// WebSearch holds Google Custom Search settings.
	WebSearch WebSearchSettings

	// CaseLaw holds case-law API settings.
	CaseLaw CaseLawSettings

	// Server holds HTTP server settings.
	Server ServerSettings

	// CatalogDir optionally overrides the embedded catalog with
	// JSON files on disk, reloaded on change.
	CatalogDir string

	// DataDir is where the sqlite query log lives.
	DataDir string
}

// DefaultAppSettings returns settings with sensible defaults.
// Credentials are left unconfigured; the pipeline degrades until
// they are provided.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider: LLMProviderOpenAI,
		},
		WebSearch: WebSearchSettings{
			MaxResults: 10,
		},
		CaseLaw: CaseLawSettings{
			BaseURL:    "https://api.rechtspraak.nl",
			MaxResults: 10,
		},
		Server: ServerSettings{
			ListenAddr:          ":8080",
			AnonymousDailyQuota: 4,
		},
	}
}

// DefaultLLMModels returns default models for each LLM provider.
func DefaultLLMModels() map[LLMProvider]string {
	return map[LLMProvider]string{
		LLMProviderOpenAI:   "gpt-4o-mini",
		LLMProviderDeepSeek: "deepseek-chat",
	}
}

// AllLLMProviders returns providers that support text completion.
func AllLLMProviders() []LLMProvider {
	return []LLMProvider{
		LLMProviderOpenAI,
		LLMProviderDeepSeek,
	}
}
