package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/processor"
	"github.com/mauv0809/cricket-stats/internal/pubsub"
)

// PerformanceRecordedHandler receives performance-recorded events from a
// Pub/Sub push subscription.
func PerformanceRecordedHandler(processor *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received performance recorded message", "body", string(bodyBytes))

		// The JSON decoder base64-decodes message.data into the byte slice.
		var push pubsub.PushRequest
		if err := json.Unmarshal(bodyBytes, &push); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		var evt pubsub.PerformanceRecorded
		if err := pubsubClient.ProcessMessage(push.Message.Data, &evt); err != nil {
			log.Error("Failed to decode event payload", "error", err, "messageId", push.Message.ID)
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		if err := processor.HandlePerformanceRecorded(r.Context(), evt, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to handle performance recorded event", "error", err, "messageId", push.Message.ID)
			// A non-2xx response makes Pub/Sub redeliver the message.
			http.Error(w, "Failed to handle event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
