package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ruraldata/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRefresher struct {
	summary *entity.RefreshSummary
	err     error
	calls   int
}

func (s *stubRefresher) RefreshAll(context.Context) (*entity.RefreshSummary, error) {
	s.calls++
	return s.summary, s.err
}

type stubSummaryStore struct {
	summary *entity.RefreshSummary
	err     error
}

func (s stubSummaryStore) ReadSummary() (*entity.RefreshSummary, error) {
	return s.summary, s.err
}

func sampleSummary() *entity.RefreshSummary {
	start := time.Date(2026, 3, 10, 5, 30, 0, 0, time.UTC)
	updated := start.Add(time.Minute)
	return &entity.RefreshSummary{
		RunID:             "63a7e65e-9f7a-4d3f-8f2d-0a4f5b6c7d8e",
		LastUpdateAttempt: start,
		Results: map[string]entity.SourceResult{
			entity.SourceCAHFacilities: {Success: true, Count: 1320, LastUpdated: &updated},
			entity.SourceRuralClinics:  {Success: false, Error: "fetch error for https://data.example.gov/clinics.csv: status 404"},
		},
		NextUpdate: start.Add(24 * time.Hour),
	}
}

func TestRefreshHandler(t *testing.T) {
	refresher := &stubRefresher{summary: sampleSummary()}
	mux := http.NewServeMux()
	Register(mux, refresher, stubSummaryStore{})

	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, refresher.calls)

	var got entity.RefreshSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Succeeded())
	assert.Equal(t, 1, got.Failed())
	assert.Contains(t, got.Results[entity.SourceRuralClinics].Error, "404")
}

func TestRefreshHandler_PersistFailure(t *testing.T) {
	refresher := &stubRefresher{summary: sampleSummary(), err: fmt.Errorf("write refresh summary: disk full")}
	mux := http.NewServeMux()
	Register(mux, refresher, stubSummaryStore{})

	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk full", "internal detail should be masked")
}

func TestRefreshHandler_MethodNotAllowed(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, &stubRefresher{summary: sampleSummary()}, stubSummaryStore{})

	req := httptest.NewRequest(http.MethodGet, "/admin/refresh", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStatusHandler(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, &stubRefresher{}, stubSummaryStore{summary: sampleSummary()})

	req := httptest.NewRequest(http.MethodGet, "/admin/status", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got entity.RefreshSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "63a7e65e-9f7a-4d3f-8f2d-0a4f5b6c7d8e", got.RunID)
	assert.Len(t, got.Results, 2)
}

func TestStatusHandler_NoRunYet(t *testing.T) {
	mux := http.NewServeMux()
	Register(mux, &stubRefresher{}, stubSummaryStore{err: fmt.Errorf("%w: refresh summary", entity.ErrCacheMiss)})

	req := httptest.NewRequest(http.MethodGet, "/admin/status", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
