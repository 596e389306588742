package dataset

import (
	"fmt"
	"log/slog"
	"net/http"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/handler/http/respond"

	"github.com/jszwec/csvutil"
)

// ExportHandler serves GET /datasets/{key}/export: the current records as
// a CSV download. The provenance travels in a response header since CSV
// has no envelope for it.
type ExportHandler struct {
	Svc      Reader
	Registry []entity.SourceDescriptor
}

// ProvenanceHeader carries the read provenance on CSV export responses.
const ProvenanceHeader = "X-Dataset-Provenance"

func (h ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		respond.SafeError(w, http.StatusBadRequest, entity.ErrUnknownSource)
		return
	}

	result := h.Svc.Read(r.Context(), key)

	out, err := csvutil.Marshal(result.Records)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("marshal csv: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", key+".csv"))
	w.Header().Set(ProvenanceHeader, string(result.Provenance))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		slog.Default().Error("failed to write csv export",
			slog.String("source", key),
			slog.Any("error", err))
	}
}
