package metrics

import "time"

// RecordRefreshRun records the outcome and duration of a full refresh run.
func RecordRefreshRun(failed int, duration time.Duration) {
	status := "success"
	if failed > 0 {
		status = "partial_failure"
	}
	RefreshRunsTotal.WithLabelValues(status).Inc()
	RefreshRunDuration.Observe(duration.Seconds())
}

// RecordSourceRefresh records a successful refresh of one source.
func RecordSourceRefresh(sourceKey string, duration time.Duration, records int) {
	SourceRefreshDuration.WithLabelValues(sourceKey).Observe(duration.Seconds())
	RecordsCached.WithLabelValues(sourceKey).Set(float64(records))
}

// RecordSourceRefreshError records a per-source failure at a pipeline
// stage (fetch, parse, filter, cache).
func RecordSourceRefreshError(sourceKey, stage string) {
	SourceRefreshErrors.WithLabelValues(sourceKey, stage).Inc()
}

// RecordFetchBytes records the size of a downloaded dataset.
func RecordFetchBytes(sourceKey string, bytes int64) {
	FetchBytesTotal.WithLabelValues(sourceKey).Add(float64(bytes))
}

// RecordDatasetRead records one read-path request by provenance.
func RecordDatasetRead(sourceKey, provenance string) {
	DatasetReadsTotal.WithLabelValues(sourceKey, provenance).Inc()
}

// RecordFallbackServed records synthetic records served for a source.
func RecordFallbackServed(sourceKey string, records int) {
	FallbackRecordsServed.WithLabelValues(sourceKey).Add(float64(records))
}
