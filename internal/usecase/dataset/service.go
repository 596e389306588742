// Package dataset implements the read path: serve the current records for
// a source with an explicit provenance indicator, degrading from fresh
// cache through stale cache to deterministic fallback synthesis.
package dataset

import (
	"context"
	"log/slog"
	"time"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/observability/metrics"
)

// Provenance tags a read result so consumers can tell real data from
// synthetic data.
type Provenance string

const (
	// ProvenanceAutomated marks records from a cache entry within the
	// fresh window.
	ProvenanceAutomated Provenance = "automated"

	// ProvenanceStaleCache marks records from a cache entry past the
	// fresh window but still within the usable window.
	ProvenanceStaleCache Provenance = "stale-cache"

	// ProvenanceFallback marks synthesized records served because no
	// usable cache entry exists.
	ProvenanceFallback Provenance = "fallback"
)

// Thresholds holds the two distinct staleness windows. FreshMaxAge governs
// refresh preference; UsableMaxAge governs whether stale data may still be
// served before falling back to synthesis. They are separate settings and
// must not be collapsed.
type Thresholds struct {
	FreshMaxAge  time.Duration
	UsableMaxAge time.Duration
}

// DefaultThresholds returns the standard 24h fresh / 48h usable windows.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FreshMaxAge:  24 * time.Hour,
		UsableMaxAge: 48 * time.Hour,
	}
}

// CacheReader is the slice of the cache store the read path needs.
type CacheReader interface {
	Read(key string) (*entity.CacheEntry, error)
	IsStale(entry *entity.CacheEntry, maxAge time.Duration) bool
}

// ReadResult is what the boundary layer receives for every dataset read:
// always a dataset, never an error.
type ReadResult struct {
	Key         string          `json:"key"`
	Records     []entity.Record `json:"records"`
	Count       int             `json:"count"`
	Provenance  Provenance      `json:"provenance"`
	Source      string          `json:"source,omitempty"`
	LastUpdated *time.Time      `json:"lastUpdated,omitempty"`
}

// Service serves dataset reads with staleness-aware fallback.
type Service struct {
	store      CacheReader
	fallback   *FallbackGenerator
	thresholds Thresholds
}

// NewService creates a read service over the given cache store. All
// collaborators are injected; the service holds no process-wide state.
func NewService(store CacheReader, fallback *FallbackGenerator, thresholds Thresholds) *Service {
	return &Service{
		store:      store,
		fallback:   fallback,
		thresholds: thresholds,
	}
}

// Read returns the current records for the source key.
//
// Degradation order:
//  1. cache entry within FreshMaxAge  -> automated
//  2. cache entry within UsableMaxAge -> stale-cache
//  3. anything else                   -> fallback synthesis
//
// Read never fails outwardly: cache misses and corrupt entries trigger
// fallback synthesis instead of propagating to the caller.
func (s *Service) Read(ctx context.Context, sourceKey string) *ReadResult {
	logger := slog.Default()

	entry, err := s.store.Read(sourceKey)
	if err != nil {
		logger.Warn("cache read failed, serving fallback data",
			slog.String("source", sourceKey),
			slog.Any("error", err))
		return s.synthesize(sourceKey)
	}

	if s.store.IsStale(entry, s.thresholds.UsableMaxAge) {
		logger.Warn("cache entry past usable window, serving fallback data",
			slog.String("source", sourceKey),
			slog.Time("last_updated", entry.LastUpdated))
		return s.synthesize(sourceKey)
	}

	provenance := ProvenanceAutomated
	if s.store.IsStale(entry, s.thresholds.FreshMaxAge) {
		provenance = ProvenanceStaleCache
	}
	metrics.RecordDatasetRead(sourceKey, string(provenance))

	lastUpdated := entry.LastUpdated
	return &ReadResult{
		Key:         sourceKey,
		Records:     entry.Data,
		Count:       entry.Count,
		Provenance:  provenance,
		Source:      entry.Source,
		LastUpdated: &lastUpdated,
	}
}

func (s *Service) synthesize(sourceKey string) *ReadResult {
	records := s.fallback.Records(sourceKey)
	metrics.RecordDatasetRead(sourceKey, string(ProvenanceFallback))
	metrics.RecordFallbackServed(sourceKey, len(records))
	return &ReadResult{
		Key:        sourceKey,
		Records:    records,
		Count:      len(records),
		Provenance: ProvenanceFallback,
	}
}
