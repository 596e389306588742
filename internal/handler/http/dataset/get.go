// Package dataset exposes the dataset read endpoints: per-source record
// retrieval (JSON and CSV export) and the source registry listing.
package dataset

import (
	"context"
	"net/http"

	"ruraldata/internal/common/pagination"
	"ruraldata/internal/domain/entity"
	"ruraldata/internal/handler/http/respond"
	datasetUC "ruraldata/internal/usecase/dataset"
)

// Reader is the slice of the dataset read service the handlers need.
type Reader interface {
	Read(ctx context.Context, sourceKey string) *datasetUC.ReadResult
}

// GetHandler serves GET /datasets/{key}.
type GetHandler struct {
	Svc      Reader
	Registry []entity.SourceDescriptor
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		respond.SafeError(w, http.StatusBadRequest, entity.ErrUnknownSource)
		return
	}

	params, err := pagination.ParseQueryParams(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result := h.Svc.Read(r.Context(), key)
	page, meta := pagination.Slice(result.Records, params)
	respond.JSON(w, http.StatusOK, DTO{
		Key:         result.Key,
		DisplayName: displayName(h.Registry, key),
		Records:     page,
		Count:       result.Count,
		Provenance:  string(result.Provenance),
		Source:      result.Source,
		LastUpdated: result.LastUpdated,
		Pagination:  meta,
	})
}

func displayName(registry []entity.SourceDescriptor, key string) string {
	for _, src := range registry {
		if src.Key == key {
			return src.DisplayName
		}
	}
	return ""
}
