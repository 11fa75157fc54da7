package file

import (
	"os"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
)

// Config keys. Nested TOML tables flatten to these dot-notation keys.
const (
	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMAPIKey      = "llm.api_key"
	keySearchAPIKey   = "search.api_key"
	keySearchEngineID = "search.engine_id"
	keySearchMaxHits  = "search.max_results"
	keyCaseLawBaseURL = "caselaw.base_url"
	keyCaseLawMaxHits = "caselaw.max_results"
	keyServerListen   = "server.listen_addr"
	keyServerQuota    = "server.anonymous_daily_quota"
	keyCatalogDir     = "catalog.dir"
	keyDataDir        = "data.dir"
)

// Environment variables override the stored configuration, keeping
// API keys out of the config file on shared hosts.
const (
	envLLMProvider    = "WETHELDER_LLM_PROVIDER"
	envLLMModel       = "WETHELDER_LLM_MODEL"
	envLLMBaseURL     = "WETHELDER_LLM_BASE_URL"
	envLLMAPIKey      = "WETHELDER_LLM_API_KEY"
	envSearchAPIKey   = "WETHELDER_SEARCH_API_KEY"
	envSearchEngineID = "WETHELDER_SEARCH_ENGINE_ID"
	envListenAddr     = "WETHELDER_LISTEN_ADDR"
	envCatalogDir     = "WETHELDER_CATALOG_DIR"
	envDataDir        = "WETHELDER_DATA_DIR"
)

// LoadSettings builds application settings from defaults, the config
// store and finally environment overrides, in that precedence order.
func LoadSettings(store driven.ConfigStore) domain.AppSettings {
	settings := domain.DefaultAppSettings()

	if v := store.GetString(keyLLMProvider); v != "" {
		settings.LLM.Provider = domain.LLMProvider(v)
	}
	if v := store.GetString(keyLLMModel); v != "" {
		settings.LLM.Model = v
	}
	if v := store.GetString(keyLLMBaseURL); v != "" {
		settings.LLM.BaseURL = v
	}
	if v := store.GetString(keyLLMAPIKey); v != "" {
		settings.LLM.APIKey = v
	}

	if v := store.GetString(keySearchAPIKey); v != "" {
		settings.WebSearch.APIKey = v
	}
	if v := store.GetString(keySearchEngineID); v != "" {
		settings.WebSearch.SearchEngineID = v
	}
	if v := store.GetInt(keySearchMaxHits); v > 0 {
		settings.WebSearch.MaxResults = v
	}

	if v := store.GetString(keyCaseLawBaseURL); v != "" {
		settings.CaseLaw.BaseURL = v
	}
	if v := store.GetInt(keyCaseLawMaxHits); v > 0 {
		settings.CaseLaw.MaxResults = v
	}

	if v := store.GetString(keyServerListen); v != "" {
		settings.Server.ListenAddr = v
	}
	if v := store.GetInt(keyServerQuota); v > 0 {
		settings.Server.AnonymousDailyQuota = v
	}

	if v := store.GetString(keyCatalogDir); v != "" {
		settings.CatalogDir = v
	}
	if v := store.GetString(keyDataDir); v != "" {
		settings.DataDir = v
	}

	applyEnvOverrides(&settings)

	if settings.LLM.Model == "" {
		settings.LLM.Model = domain.DefaultLLMModels()[settings.LLM.Provider]
	}

	return settings
}

func applyEnvOverrides(settings *domain.AppSettings) {
	if v := os.Getenv(envLLMProvider); v != "" {
		settings.LLM.Provider = domain.LLMProvider(v)
	}
	if v := os.Getenv(envLLMModel); v != "" {
		settings.LLM.Model = v
	}
	if v := os.Getenv(envLLMBaseURL); v != "" {
		settings.LLM.BaseURL = v
	}
	if v := os.Getenv(envLLMAPIKey); v != "" {
		settings.LLM.APIKey = v
	}
	if v := os.Getenv(envSearchAPIKey); v != "" {
		settings.WebSearch.APIKey = v
	}
	if v := os.Getenv(envSearchEngineID); v != "" {
		settings.WebSearch.SearchEngineID = v
	}
	if v := os.Getenv(envListenAddr); v != "" {
		settings.Server.ListenAddr = v
	}
	if v := os.Getenv(envCatalogDir); v != "" {
		settings.CatalogDir = v
	}
	if v := os.Getenv(envDataDir); v != "" {
		settings.DataDir = v
	}
}
