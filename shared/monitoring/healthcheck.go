package monitoring

import (
	"fmt"
	"net/http"
)

// HealthHandler reports 200 while the last analysis run (if any) succeeded
// and 503 otherwise. Intended to be mounted on the application mux.
func HealthHandler(monitor *Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if monitor.IsHealthy() {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "OK - %s", monitor.GetStatusSummary())
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "Service unhealthy - %s", monitor.GetStatusSummary())
	}
}

// StatusHandler reports the last-run summary as plain text.
func StatusHandler(monitor *Monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "%s", monitor.GetStatusSummary())
	}
}
