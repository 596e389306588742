package http

import (
	"errors"
	"net/http"
	"time"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/handler/http/respond"
)

// HealthResponse is the JSON body of the health check endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the status of a single health check item.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SummaryReader reads the last refresh run summary for health reporting.
type SummaryReader interface {
	ReadSummary() (*entity.RefreshSummary, error)
}

// HealthHandler serves GET /health. The process is healthy as long as the
// cache store is reachable; a missing summary only means no refresh run
// has completed yet and does not fail the check.
type HealthHandler struct {
	Store   SummaryReader
	Version string
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{}
	healthy := true

	summary, err := h.Store.ReadSummary()
	switch {
	case err == nil:
		check := CheckStatus{Status: "healthy"}
		if failed := summary.Failed(); failed > 0 {
			check.Message = "last refresh run had source failures"
		}
		checks["refresh_summary"] = check
	case errors.Is(err, entity.ErrCacheMiss):
		checks["refresh_summary"] = CheckStatus{
			Status:  "healthy",
			Message: "no refresh run recorded yet",
		}
	default:
		healthy = false
		checks["refresh_summary"] = CheckStatus{
			Status:  "unhealthy",
			Message: "cache store unreadable",
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}
	code := http.StatusOK
	if !healthy {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, resp)
}
