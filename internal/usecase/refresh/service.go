// Package refresh orchestrates the dataset refresh pipeline: fetch each
// registered source, parse the downloaded CSV, filter to domain records
// and persist the result, with per-source failure isolation.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/observability/metrics"
	"ruraldata/internal/observability/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Downloader retrieves a source file and stages it locally, returning the
// staged path.
type Downloader interface {
	Download(ctx context.Context, url, localFileName string) (string, error)
}

// RowParser turns raw delimited text into row mappings.
type RowParser interface {
	Parse(text string) ([]entity.RawRow, error)
}

// CacheWriter persists dataset entries and run summaries.
type CacheWriter interface {
	Write(key, sourceURL string, records []entity.Record) (*entity.CacheEntry, error)
	WriteSummary(summary *entity.RefreshSummary) error
}

// Config controls how a refresh run behaves.
type Config struct {
	// Interval between scheduled runs; used to compute the summary's
	// nextUpdate timestamp.
	Interval time.Duration

	// Parallel fans source refreshes out across goroutines. Sources share
	// no mutable state, so each one writes its own result slot and the
	// summary is written after all slots resolve.
	Parallel bool
}

// Service runs the refresh pipeline over a fixed source registry. The
// scheduled timer and the on-demand admin trigger both call RefreshAll;
// there is no separate manual code path.
type Service struct {
	downloader Downloader
	parser     RowParser
	store      CacheWriter
	sources    []entity.SourceDescriptor
	config     Config
}

// NewService creates a refresh Service over the given source registry.
func NewService(downloader Downloader, parser RowParser, store CacheWriter, sources []entity.SourceDescriptor, config Config) *Service {
	return &Service{
		downloader: downloader,
		parser:     parser,
		store:      store,
		sources:    sources,
		config:     config,
	}
}

// Sources returns the registered source descriptors.
func (s *Service) Sources() []entity.SourceDescriptor {
	return s.sources
}

// RefreshAll runs the full pipeline once. A failure at any stage for one
// source is recorded in that source's summary slot and never aborts the
// remaining sources. The summary is written unconditionally after every
// source has been processed; the returned error reflects only summary
// persistence, never source failures.
func (s *Service) RefreshAll(ctx context.Context) (*entity.RefreshSummary, error) {
	logger := slog.Default()
	start := time.Now().UTC()
	runID := uuid.NewString()

	ctx, span := tracing.GetTracer().Start(ctx, "refresh.RefreshAll")
	span.SetAttributes(
		attribute.String("refresh.run_id", runID),
		attribute.Int("refresh.sources", len(s.sources)),
	)
	defer span.End()

	logger.Info("refresh run started",
		slog.String("run_id", runID),
		slog.Int("sources", len(s.sources)))

	summary := &entity.RefreshSummary{
		RunID:             runID,
		LastUpdateAttempt: start,
		Results:           make(map[string]entity.SourceResult, len(s.sources)),
		NextUpdate:        start.Add(s.config.Interval),
	}

	if s.config.Parallel {
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		for _, src := range s.sources {
			g.Go(func() error {
				result := s.refreshSource(gctx, src)
				mu.Lock()
				summary.Results[src.Key] = result
				mu.Unlock()
				return nil
			})
		}
		// Workers never return errors; the group is a completion barrier.
		_ = g.Wait()
	} else {
		for _, src := range s.sources {
			summary.Results[src.Key] = s.refreshSource(ctx, src)
		}
	}

	failed := summary.Failed()
	metrics.RecordRefreshRun(failed, time.Since(start))
	logger.Info("refresh run completed",
		slog.String("run_id", runID),
		slog.Int("succeeded", summary.Succeeded()),
		slog.Int("failed", failed),
		slog.Duration("duration", time.Since(start)))

	if err := s.store.WriteSummary(summary); err != nil {
		return summary, fmt.Errorf("write refresh summary: %w", err)
	}
	return summary, nil
}

// refreshSource runs one source through fetch → parse → filter → cache.
// All failures are converted into the returned SourceResult.
func (s *Service) refreshSource(ctx context.Context, src entity.SourceDescriptor) entity.SourceResult {
	logger := slog.Default()
	sourceStart := time.Now()

	ctx, span := tracing.GetTracer().Start(ctx, "refresh.refreshSource")
	span.SetAttributes(
		attribute.String("source.key", src.Key),
		attribute.String("source.url", src.SourceURL),
	)
	defer span.End()

	fail := func(stage string, err error) entity.SourceResult {
		logger.Warn("source refresh failed",
			slog.String("source", src.Key),
			slog.String("stage", stage),
			slog.Any("error", err))
		metrics.RecordSourceRefreshError(src.Key, stage)
		span.RecordError(err)
		return entity.SourceResult{Success: false, Error: err.Error()}
	}

	path, err := s.downloader.Download(ctx, src.SourceURL, src.LocalFileName)
	if err != nil {
		return fail("fetch", err)
	}
	defer os.Remove(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fail("fetch", fmt.Errorf("read staged file %s: %w", path, err))
	}
	metrics.RecordFetchBytes(src.Key, int64(len(raw)))

	rows, err := s.parser.Parse(string(raw))
	if err != nil {
		return fail("parse", err)
	}

	records := FilterRows(rows, src.Key)
	if len(records) == 0 {
		return fail("filter", &entity.ParseError{
			Source: src.Key,
			Reason: fmt.Sprintf("no records remain after filtering %d rows", len(rows)),
		})
	}

	entry, err := s.store.Write(src.Key, src.SourceURL, records)
	if err != nil {
		return fail("cache", err)
	}

	metrics.RecordSourceRefresh(src.Key, time.Since(sourceStart), len(records))
	logger.Info("source refreshed",
		slog.String("source", src.Key),
		slog.Int("rows", len(rows)),
		slog.Int("records", len(records)),
		slog.Duration("duration", time.Since(sourceStart)))

	return entity.SourceResult{
		Success:     true,
		Count:       len(records),
		LastUpdated: &entry.LastUpdated,
	}
}
