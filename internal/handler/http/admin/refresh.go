// Package admin exposes the operational endpoints: triggering a refresh
// run on demand and inspecting the last run's summary.
package admin

import (
	"context"
	"net/http"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/handler/http/respond"
)

// Refresher runs the refresh pipeline once. The scheduled worker uses the
// same routine; this endpoint is just a different caller.
type Refresher interface {
	RefreshAll(ctx context.Context) (*entity.RefreshSummary, error)
}

// RefreshHandler serves POST /admin/refresh.
type RefreshHandler struct {
	Svc Refresher
}

func (h RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.RefreshAll(r.Context())
	if err != nil {
		// Source failures are inside the summary; an error here means
		// the summary itself could not be persisted.
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, summary)
}
