package handler

import (
	"fmt"
	"net/http"

	"github.com/ece-devops/userapi/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "userapi_users_created_total %d\n", snap.UsersCreated)

	writeMetric(w, "userapi_user_lookups_total{outcome=\"found\"} %d\n", snap.LookupsFound)
	writeMetric(w, "userapi_user_lookups_total{outcome=\"not_found\"} %d\n", snap.LookupsNotFound)
	writeMetric(w, "userapi_user_lookups_total{outcome=\"error\"} %d\n", snap.LookupsFailed)

	writeMetric(w, "userapi_store_errors_total{op=\"create\"} %d\n", snap.StoreErrorsCreate)
	writeMetric(w, "userapi_store_errors_total{op=\"get\"} %d\n", snap.StoreErrorsGet)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
