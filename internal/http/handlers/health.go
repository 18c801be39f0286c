package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/metrics"
)

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// CountersHandler lists the persisted event counters.
func CountersHandler(counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := counters.GetAll()
		if err != nil {
			log.Error("Failed to get counters", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get counters")
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}
