package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wethelder/wethelder/internal/core/domain"
)

func TestCatalog_EmbeddedData(t *testing.T) {
	catalog, err := NewCatalog("")
	require.NoError(t, err)
	defer catalog.Close()

	assert.NotEmpty(t, catalog.All())
	assert.NotEmpty(t, catalog.KeywordTables())
	assert.NotEmpty(t, catalog.StatuteTopics())
}

func TestCatalog_LookupCaseInsensitive(t *testing.T) {
	catalog, err := NewCatalog("")
	require.NoError(t, err)
	defer catalog.Close()

	ref, err := catalog.Lookup("n420")
	require.NoError(t, err)
	assert.Equal(t, "N420", ref.Identifier)
	assert.Equal(t, domain.OriginStructuredDB, ref.Origin)
	assert.NotEmpty(t, ref.MonetaryValue)
}

func TestCatalog_LookupUnknown(t *testing.T) {
	catalog, err := NewCatalog("")
	require.NoError(t, err)
	defer catalog.Close()

	_, err = catalog.Lookup("Z999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_OverrideDirReplacesEmbedded(t *testing.T) {
	dir := t.TempDir()
	override := `[{"identifier": "T001", "title": "Testfeit", "category": "boetes"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boetes.json"), []byte(override), 0o644))

	catalog, err := NewCatalog(dir)
	require.NoError(t, err)
	defer catalog.Close()

	ref, err := catalog.Lookup("T001")
	require.NoError(t, err)
	assert.Equal(t, "Testfeit", ref.Title)

	// The embedded fines are gone, the embedded articles remain.
	_, err = catalog.Lookup("N420")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = catalog.Lookup("ART-5-WVW")
	assert.NoError(t, err)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	catalog, err := NewCatalog("")
	require.NoError(t, err)
	defer catalog.Close()

	refs := catalog.All()
	require.NotEmpty(t, refs)
	refs[0].Title = "aangepast"

	assert.NotEqual(t, "aangepast", catalog.All()[0].Title)
}
