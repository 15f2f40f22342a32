package handler

import (
	"fmt"
	"net/http"

	"github.com/DanielOuteiro/fakecar-api/internal/metrics"
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

	writeMetric(w, "fakecar_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "fakecar_cars_updated_total %d\n", snap.CarsUpdated)
	writeMetric(w, "fakecar_users_not_found_total %d\n", snap.UsersNotFound)
	writeMetric(w, "fakecar_car_generation_seconds_count %d\n", snap.CarGenerationCount)
	writeMetric(w, "fakecar_car_generation_seconds_sum %.6f\n", float64(snap.CarGenerationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
