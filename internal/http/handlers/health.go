package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/season-standings/internal/season"
)

func HealthCheckHandler(store season.SeasonStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func ClearStoreHandler(store season.SeasonStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := r.URL.Query().Get("eventID")
		if eventID != "" {
			log.Info("Received request to clear a specific event", "eventID", eventID)
			store.ClearEvent(eventID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared event %s from store!", eventID)
			log.Info("Successfully cleared event from store", "eventID", eventID)
		} else {
			log.Info("Received request to clear entire store")
			store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
	}
}
