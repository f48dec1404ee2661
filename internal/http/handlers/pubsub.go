package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/season-standings/internal/processor"
	"github.com/mauv0809/season-standings/internal/pubsub"
)

// RecomputePushHandler receives pushed recompute messages. A non-2xx reply
// makes pub/sub redeliver, so only failed runs return an error.
func RecomputePushHandler(processor *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received recompute message", "body", string(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		req := pubsub.RecomputeRequest{}
		if len(rawData) > 0 {
			if err := pubsubClient.ProcessMessage(rawData, &req); err != nil {
				http.Error(w, "Invalid message data", http.StatusBadRequest)
				return
			}
		}
		log.Info("Recompute requested", "subscription", pubsubMsg.Subscription, "reason", req.Reason)

		isDryRun := IsDryRunFromContext(r) || req.DryRun
		if _, err := processor.Run(isDryRun); err != nil {
			http.Error(w, "Failed to compute standings", runStatus(err))
			return
		}
		w.Write([]byte("OK"))
	}
}
