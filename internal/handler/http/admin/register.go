package admin

import (
	"net/http"
)

// Register registers the admin endpoints with the given mux.
func Register(mux *http.ServeMux, refresher Refresher, store SummaryReader) {
	mux.Handle("POST /admin/refresh", RefreshHandler{Svc: refresher})
	mux.Handle("GET /admin/status", StatusHandler{Store: store})
}
