package http

import (
	"log/slog"
	"net/http"

	"ruraldata/internal/domain/entity"
	"ruraldata/internal/handler/http/admin"
	datasetHandler "ruraldata/internal/handler/http/dataset"
	"ruraldata/internal/observability/tracing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxRequestBody caps admin request bodies; the read API takes no bodies
// at all.
const maxRequestBody = 1 << 20 // 1 MiB

// RouterDeps bundles everything the API router serves.
type RouterDeps struct {
	Logger    *slog.Logger
	Reader    datasetHandler.Reader
	Refresher admin.Refresher
	Store     SummaryReader
	Entries   datasetHandler.EntryReader
	Registry  []entity.SourceDescriptor
	Version   string
}

// NewRouter builds the API server handler: dataset reads, admin endpoints,
// health check and Prometheus metrics, wrapped in the standard middleware
// stack.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	datasetHandler.Register(mux, deps.Reader, deps.Entries, deps.Registry)
	admin.Register(mux, deps.Refresher, deps.Store)
	mux.Handle("GET /health", HealthHandler{Store: deps.Store, Version: deps.Version})
	mux.HandleFunc("GET /health/ready", func(w http.ResponseWriter, r *http.Request) {
		// The API has no warm-up phase: once the listener is up it can serve,
		// degrading to stale-cache or fallback data when the cache is cold.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return Chain(mux,
		Recover(deps.Logger),
		tracing.Middleware,
		RequestID,
		Logging(deps.Logger),
		Metrics(),
		LimitRequestBody(maxRequestBody),
	)
}
