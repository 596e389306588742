package dataset

import (
	"net/http"

	"ruraldata/internal/domain/entity"
)

// Register registers the dataset read endpoints with the given mux.
func Register(mux *http.ServeMux, svc Reader, store EntryReader, registry []entity.SourceDescriptor) {
	mux.Handle("GET /datasets", ListHandler{Registry: registry, Store: store})
	mux.Handle("GET /datasets/{key}", GetHandler{Svc: svc, Registry: registry})
	mux.Handle("GET /datasets/{key}/export", ExportHandler{Svc: svc, Registry: registry})
}
