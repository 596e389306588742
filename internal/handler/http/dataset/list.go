package dataset

import (
	"net/http"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/handler/http/respond"
)

// EntryReader reads raw cache entries for status reporting, without the
// fallback behavior of the read service.
type EntryReader interface {
	Read(key string) (*entity.CacheEntry, error)
}

// ListHandler serves GET /datasets: the registered sources with their
// current cache status, without the records themselves.
type ListHandler struct {
	Registry []entity.SourceDescriptor
	Store    EntryReader
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out := make([]SourceDTO, 0, len(h.Registry))
	for _, src := range h.Registry {
		dto := SourceDTO{
			Key:         src.Key,
			DisplayName: src.DisplayName,
			SourceURL:   src.SourceURL,
		}
		if h.Store != nil {
			if entry, err := h.Store.Read(src.Key); err == nil {
				lastUpdated := entry.LastUpdated
				dto.Cached = true
				dto.Count = entry.Count
				dto.LastUpdated = &lastUpdated
			}
		}
		out = append(out, dto)
	}
	respond.JSON(w, http.StatusOK, out)
}
