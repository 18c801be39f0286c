package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"github.com/mauv0809/cricket-stats/internal/pubsub"
)

// RecordBattingHandler saves an innings and announces it on the event bus.
func RecordBattingHandler(store club.ClubStore, pubsubClient pubsub.PubSubClient, metricsSvc metrics.Metrics, counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var perf cricket.BattingPerformance
		if err := json.NewDecoder(r.Body).Decode(&perf); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := perf.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := store.UpsertBattingPerformance(r.Context(), &perf); err != nil {
			log.FromContext(r.Context()).Error("Failed to save batting performance", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save batting performance")
			return
		}
		recorded(r, pubsubClient, metricsSvc, counters, pubsub.PerformanceRecorded{
			Kind:     pubsub.KindBatting,
			MatchID:  perf.MatchID,
			PlayerID: perf.PlayerID,
		})
		writeJSON(w, http.StatusOK, perf)
	}
}

// RecordBowlingHandler saves a spell and announces it on the event bus.
func RecordBowlingHandler(store club.ClubStore, pubsubClient pubsub.PubSubClient, metricsSvc metrics.Metrics, counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var perf cricket.BowlingPerformance
		if err := json.NewDecoder(r.Body).Decode(&perf); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := perf.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := store.UpsertBowlingPerformance(r.Context(), &perf); err != nil {
			log.FromContext(r.Context()).Error("Failed to save bowling performance", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save bowling performance")
			return
		}
		recorded(r, pubsubClient, metricsSvc, counters, pubsub.PerformanceRecorded{
			Kind:     pubsub.KindBowling,
			MatchID:  perf.MatchID,
			PlayerID: perf.PlayerID,
		})
		writeJSON(w, http.StatusOK, perf)
	}
}

// recorded counts a saved performance and publishes its event. A failed
// publish does not fail the request; the record is already stored.
func recorded(r *http.Request, pubsubClient pubsub.PubSubClient, metricsSvc metrics.Metrics, counters metrics.MetricsStore, evt pubsub.PerformanceRecorded) {
	logger := log.FromContext(r.Context())
	metricsSvc.IncPerformancesRecorded(string(evt.Kind))
	counters.Increment(metrics.KeyPerformancesRecorded)
	if IsDryRunFromContext(r) {
		logger.Info("[Dry Run] Would have published event", "topic", pubsub.EventPerformanceRecorded, "kind", evt.Kind)
		return
	}
	if err := pubsubClient.SendMessage(pubsub.EventPerformanceRecorded, evt); err != nil {
		logger.Error("Failed to publish performance event", "error", err, "kind", evt.Kind, "matchID", evt.MatchID, "playerID", evt.PlayerID)
	}
}
