package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "openai"))

	assert.Equal(t, "openai", store.GetString("llm.provider"))
	assert.Equal(t, "", store.GetString("missing.key"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("server.listen_addr", ":9090"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", reloaded.GetString("server.listen_addr"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[search]\napi_key = \"sleutel\"\nmax_results = 8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "sleutel", store.GetString("search.api_key"))
	assert.Equal(t, 8, store.GetInt("search.max_results"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.api_key", "geheim"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadSettings_StoreOverridesDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("server.anonymous_daily_quota", int64(10)))
	require.NoError(t, store.Set("search.api_key", "sleutel"))

	settings := LoadSettings(store)

	assert.Equal(t, 10, settings.Server.AnonymousDailyQuota)
	assert.Equal(t, "sleutel", settings.WebSearch.APIKey)
}

func TestLoadSettings_EnvOverridesStore(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("search.api_key", "uit-bestand"))

	t.Setenv("WETHELDER_SEARCH_API_KEY", "uit-omgeving")

	settings := LoadSettings(store)

	assert.Equal(t, "uit-omgeving", settings.WebSearch.APIKey)
}

func TestLoadSettings_DefaultModelPerProvider(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.provider", "openai"))

	settings := LoadSettings(store)

	assert.NotEmpty(t, settings.LLM.Model)
}
