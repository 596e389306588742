package admin

import (
	"errors"
	"fmt"
	"net/http"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/handler/http/respond"
)

// SummaryReader reads the persisted summary of the last refresh run.
type SummaryReader interface {
	ReadSummary() (*entity.RefreshSummary, error)
}

// StatusHandler serves GET /admin/status: the last refresh run's summary.
type StatusHandler struct {
	Store SummaryReader
}

func (h StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Store.ReadSummary()
	if err != nil {
		if errors.Is(err, entity.ErrCacheMiss) {
			respond.SafeError(w, http.StatusNotFound, fmt.Errorf("no refresh run recorded: not found"))
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, summary)
}
