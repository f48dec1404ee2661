package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/season-standings/internal/notifier"
	"github.com/mauv0809/season-standings/internal/season"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// respondWithFormatted casts a notifier response to a Slack message and writes it.
func respondWithFormatted(w http.ResponseWriter, msg any, err error, what string) {
	if err != nil {
		http.Error(w, "Failed to format "+what, http.StatusInternalServerError)
		log.Error("Failed to format "+what, "error", err)
		return
	}

	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

func StandingsCommandHandler(store season.SeasonStore, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.GetStandings()
		if err != nil {
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			log.Error("Failed to get standings from store", "error", err)
			return
		}

		msg, err := notifier.FormatStandingsResponse(players)
		respondWithFormatted(w, msg, err, "standings")
	}
}

func PlayerCommandHandler(store season.SeasonStore, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		playerName := strings.Join(strings.Fields(r.FormValue("text")), " ")
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player command", "player", playerName)
		player, err := store.GetPlayerStandingByName(playerName)
		var msg any
		if err != nil {
			log.Warn("Could not find player standing", "player", playerName, "error", err)
			msg, err = notifier.FormatPlayerNotFoundResponse(playerName)
		} else {
			msg, err = notifier.FormatPlayerStandingResponse(player, playerName)
		}
		respondWithFormatted(w, msg, err, "player standing")
	}
}

func ChampionsCommandHandler(store season.SeasonStore, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reigns, err := store.GetChampions()
		if err != nil {
			http.Error(w, "Failed to get champions", http.StatusInternalServerError)
			log.Error("Failed to get champions from store", "error", err)
			return
		}

		msg, err := notifier.FormatChampionsResponse(reigns)
		respondWithFormatted(w, msg, err, "champions")
	}
}
