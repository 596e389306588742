package cachestore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/infra/cachestore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *cachestore.Store {
	t.Helper()
	store, err := cachestore.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func sampleRecords() []entity.Record {
	return []entity.Record{
		{ProviderName: "Mercy Hospital", StateCode: "IA", CountyName: "Cedar"},
		{ProviderName: "Pine Valley CAH", StateCode: "MT", CountyName: "Gallatin"},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newStore(t)

	written, err := store.Write("cahFacilities", "https://data.example.gov/cah.csv", sampleRecords())
	require.NoError(t, err)
	require.Equal(t, 2, written.Count)

	got, err := store.Read("cahFacilities")
	require.NoError(t, err)

	if diff := cmp.Diff(written.Data, got.Data); diff != "" {
		t.Errorf("data mismatch after round-trip (-want +got):\n%s", diff)
	}
	require.Equal(t, len(got.Data), got.Count, "count invariant")
	require.Equal(t, "https://data.example.gov/cah.csv", got.Source)
}

func TestReadMissing(t *testing.T) {
	store := newStore(t)

	_, err := store.Read("nope")
	require.ErrorIs(t, err, entity.ErrCacheMiss)
}

func TestReadCorrupt(t *testing.T) {
	store := newStore(t)

	path := filepath.Join(store.Dir(), "cahFacilities.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.Read("cahFacilities")
	require.ErrorIs(t, err, entity.ErrCacheCorrupt)
}

func TestReadCountInvariantViolated(t *testing.T) {
	store := newStore(t)

	// An entry whose count disagrees with its data is corrupt.
	path := filepath.Join(store.Dir(), "cahFacilities.json")
	body := `{"data":[{"stateCode":"IA"}],"lastUpdated":"2026-01-01T00:00:00Z","source":"x","count":5}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := store.Read("cahFacilities")
	require.ErrorIs(t, err, entity.ErrCacheCorrupt)
}

func TestIsStale(t *testing.T) {
	store := newStore(t)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store.Clock = func() time.Time { return now }

	entry, err := store.Write("ruralClinics", "https://data.example.gov/rhc.csv", sampleRecords())
	require.NoError(t, err)

	if store.IsStale(entry, 24*time.Hour) {
		t.Error("entry should be fresh immediately after write")
	}

	store.Clock = func() time.Time { return now.Add(25 * time.Hour) }
	if !store.IsStale(entry, 24*time.Hour) {
		t.Error("entry should be stale after 25h with 24h max age")
	}
	// Same entry, larger tolerance: still usable.
	if store.IsStale(entry, 48*time.Hour) {
		t.Error("entry should still be within the 48h usable window")
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	store := newStore(t)

	_, err := store.Write("shortageAreas", "https://data.example.gov/hpsa.csv", sampleRecords())
	require.NoError(t, err)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "shortageAreas.json", entries[0].Name())
}

func TestSummaryRoundTrip(t *testing.T) {
	store := newStore(t)

	_, err := store.ReadSummary()
	require.ErrorIs(t, err, entity.ErrCacheMiss)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	summary := &entity.RefreshSummary{
		RunID:             "run-1",
		LastUpdateAttempt: now,
		Results: map[string]entity.SourceResult{
			"cahFacilities": {Success: true, Count: 2},
			"ruralClinics":  {Success: false, Error: "fetch https://x: unexpected status 404"},
		},
		NextUpdate: now.Add(24 * time.Hour),
	}
	require.NoError(t, store.WriteSummary(summary))

	got, err := store.ReadSummary()
	require.NoError(t, err)
	if diff := cmp.Diff(summary, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, got.Succeeded())
	require.Equal(t, 1, got.Failed())
}

func TestEntryPathEscaping(t *testing.T) {
	store := newStore(t)

	_, err := store.Write("../evil", "https://x", nil)
	require.NoError(t, err)

	// Nothing may be written outside the cache directory.
	parent := filepath.Dir(store.Dir())
	if _, statErr := os.Stat(filepath.Join(parent, "evil.json")); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("cache entry escaped the base directory")
	}
}
