// Package metrics provides centralized Prometheus metrics for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh pipeline metrics track dataset refresh runs and their stages.
var (
	// RefreshRunsTotal counts orchestration runs by final status.
	RefreshRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_refresh_runs_total",
			Help: "Total number of dataset refresh runs",
		},
		[]string{"status"},
	)

	// RefreshRunDuration measures the duration of a full refresh run.
	RefreshRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_refresh_run_duration_seconds",
			Help:    "Time taken for a full dataset refresh run",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	// SourceRefreshDuration measures per-source refresh duration.
	SourceRefreshDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_source_refresh_duration_seconds",
			Help:    "Time taken to refresh a single dataset source",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"source"},
	)

	// SourceRefreshErrors counts per-source refresh failures by stage.
	SourceRefreshErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_source_refresh_errors_total",
			Help: "Total number of per-source refresh failures",
		},
		[]string{"source", "stage"},
	)

	// RecordsCached tracks the record count of the latest cache entry
	// per source.
	RecordsCached = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_records_cached",
			Help: "Number of records in the latest cache entry per source",
		},
		[]string{"source"},
	)

	// FetchBytesTotal counts bytes downloaded per source.
	FetchBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_fetch_bytes_total",
			Help: "Total bytes downloaded from dataset sources",
		},
		[]string{"source"},
	)
)

// Read path metrics track what consumers are actually served.
var (
	// DatasetReadsTotal counts reads by source and provenance
	// (automated, stale-cache, fallback).
	DatasetReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reads_total",
			Help: "Total dataset reads by provenance",
		},
		[]string{"source", "provenance"},
	)

	// FallbackRecordsServed counts synthetic records served per source.
	FallbackRecordsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_fallback_records_served_total",
			Help: "Total synthetic fallback records served",
		},
		[]string{"source"},
	)
)

// HTTP metrics track boundary-layer request patterns.
var (
	// HTTPRequestsTotal counts HTTP requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
