package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/stats"
)

func BattingStatsHandler(reporter stats.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchType := matchTypeParam(r)
		var (
			body any
			err  error
		)
		if r.URL.Query().Get("perPlayer") == "true" {
			body, err = reporter.PlayerBattingStats(r.Context(), matchType)
		} else {
			body, err = reporter.BattingStats(r.Context(), matchType)
		}
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to compute batting stats", "error", err, "match_type", matchType)
			writeError(w, http.StatusInternalServerError, "Failed to fetch batting stats")
			return
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func BowlingStatsHandler(reporter stats.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchType := matchTypeParam(r)
		var (
			body any
			err  error
		)
		if r.URL.Query().Get("perPlayer") == "true" {
			body, err = reporter.PlayerBowlingStats(r.Context(), matchType)
		} else {
			body, err = reporter.BowlingStats(r.Context(), matchType)
		}
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to compute bowling stats", "error", err, "match_type", matchType)
			writeError(w, http.StatusInternalServerError, "Failed to fetch bowling stats")
			return
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func BreakdownHandler(reporter stats.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breakdown, err := reporter.Breakdown(r.Context())
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to compute breakdown", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch stats breakdown")
			return
		}
		writeJSON(w, http.StatusOK, breakdown)
	}
}

// PlayerDetailHandler reports one player's stats and recent performances.
func PlayerDetailHandler(reporter stats.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("id")
		detail, err := reporter.PlayerDetail(r.Context(), playerID, matchTypeParam(r))
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to compute player stats", "error", err, "player_id", playerID)
			writeError(w, http.StatusInternalServerError, "Failed to fetch player stats")
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}
