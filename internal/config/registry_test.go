package config

import (
	"os"
	"path/filepath"
	"testing"

	"ruraldata/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	sources := DefaultRegistry()

	require.Len(t, sources, 3)
	keys := []string{sources[0].Key, sources[1].Key, sources[2].Key}
	assert.Contains(t, keys, entity.SourceCAHFacilities)
	assert.Contains(t, keys, entity.SourceRuralClinics)
	assert.Contains(t, keys, entity.SourceShortageAreas)

	for _, src := range sources {
		assert.NoError(t, src.Validate())
	}
}

func TestLoadRegistry_EmptyPathReturnsDefaults(t *testing.T) {
	sources, err := LoadRegistry("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRegistry(), sources)
}

func TestLoadRegistry_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := `sources:
  - key: cahFacilities
    displayName: Critical Access Hospitals
    sourceUrl: https://data.example.gov/cah.csv
    localFileName: cah.csv
  - key: ruralClinics
    displayName: Rural Health Clinics
    sourceUrl: https://data.example.gov/clinics.csv
    localFileName: clinics.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sources, err := LoadRegistry(path)
	require.NoError(t, err)

	require.Len(t, sources, 2)
	assert.Equal(t, entity.SourceCAHFacilities, sources[0].Key)
	assert.Equal(t, "https://data.example.gov/clinics.csv", sources[1].SourceURL)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read registry file")
}

func TestLoadRegistry_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: [unclosed"), 0o644))

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse registry file")
}

func TestLoadRegistry_EmptySources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: []\n"), 0o644))

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no sources")
}

func TestLoadRegistry_DuplicateKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := `sources:
  - key: cahFacilities
    displayName: One
    sourceUrl: https://data.example.gov/one.csv
    localFileName: one.csv
  - key: cahFacilities
    displayName: Two
    sourceUrl: https://data.example.gov/two.csv
    localFileName: two.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate source key")
}

func TestLoadRegistry_DuplicateLocalFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := `sources:
  - key: cahFacilities
    displayName: One
    sourceUrl: https://data.example.gov/one.csv
    localFileName: shared.csv
  - key: ruralClinics
    displayName: Two
    sourceUrl: https://data.example.gov/two.csv
    localFileName: nested/shared.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate local file name")
}

func TestLoadRegistry_InvalidEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := `sources:
  - key: ""
    displayName: Broken
    sourceUrl: https://data.example.gov/broken.csv
    localFileName: broken.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadRegistry(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry entry 0")
}
