package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/processor"
)

// SendSummaryHandler is called by the scheduler to post the team summary.
func SendSummaryHandler(processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchType := matchTypeParam(r)
		log.Info("Starting summary post...", "match_type", matchType)
		if err := processor.SendSummary(r.Context(), matchType, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to send summary", "error", err)
			http.Error(w, "Failed to send summary", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Summary sent.")
		log.Info("Summary post finished.")
	}
}
