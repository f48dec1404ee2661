package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/season-standings/internal/notifier"
	"github.com/mauv0809/season-standings/internal/processor"
	"github.com/mauv0809/season-standings/internal/season"
	"github.com/mauv0809/season-standings/internal/standings"
)

// maxImportSize caps the size of an uploaded results file.
const maxImportSize = 10 << 20

// RunSummary is the response body of a recompute.
type RunSummary struct {
	RunID       string `json:"run_id"`
	DryRun      bool   `json:"dry_run"`
	SkippedRows int    `json:"skipped_rows"`
	Events      int    `json:"events"`
	Players     int    `json:"players"`
	ChampionID  string `json:"champion_id,omitempty"`
}

func summarize(result *processor.RunResult) RunSummary {
	summary := RunSummary{
		RunID:       result.RunID,
		DryRun:      result.DryRun,
		SkippedRows: result.SkippedRows,
		Events:      len(result.Standings.Events),
		Players:     len(result.Standings.Players),
	}
	if champ, ok := result.Standings.CurrentChampion(); ok {
		summary.ChampionID = champ.PlayerID
	}
	return summary
}

// runStatus maps a failed run to a status code. Bad season data is the
// caller's problem, anything else is ours.
func runStatus(err error) int {
	switch {
	case errors.Is(err, standings.ErrDuplicateEvent),
		errors.Is(err, standings.ErrDuplicateScore),
		errors.Is(err, standings.ErrEventOutOfOrder):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func RecomputeHandler(processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := IsDryRunFromContext(r)
		result, err := processor.Run(isDryRun)
		if err != nil {
			log.Error("Recompute failed", "error", err)
			http.Error(w, "Failed to compute standings: "+err.Error(), runStatus(err))
			return
		}
		writeJSON(w, http.StatusOK, summarize(result))
	}
}

func StandingsHandler(store season.SeasonStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if name := r.URL.Query().Get("player"); name != "" {
			player, err := store.GetPlayerStandingByName(name)
			if err != nil {
				if errors.Is(err, season.ErrPlayerNotFound) {
					http.Error(w, "Player not found", http.StatusNotFound)
					return
				}
				log.Error("Failed to get player standing", "error", err)
				http.Error(w, "Failed to get player standing", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, player)
			return
		}

		players, err := store.GetStandings()
		if err != nil {
			log.Error("Failed to get standings", "error", err)
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, notifier.StandingsTable(players))
	}
}

func ChampionsHandler(store season.SeasonStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reigns, err := store.GetChampions()
		if err != nil {
			log.Error("Failed to get champions", "error", err)
			http.Error(w, "Failed to get champions", http.StatusInternalServerError)
			return
		}
		if reigns == nil {
			reigns = []standings.Reign{}
		}
		writeJSON(w, http.StatusOK, reigns)
	}
}

func ListEventsHandler(store season.SeasonStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if eventID := r.URL.Query().Get("eventID"); eventID != "" {
			results, err := store.GetEventResults(eventID)
			if err != nil {
				log.Error("Failed to get event results", "error", err, "eventID", eventID)
				http.Error(w, "Failed to get event results", http.StatusInternalServerError)
				return
			}
			if results == nil {
				results = []season.Result{}
			}
			writeJSON(w, http.StatusOK, results)
			return
		}

		events, err := store.ListEvents()
		if err != nil {
			log.Error("Failed to list events", "error", err)
			http.Error(w, "Failed to list events", http.StatusInternalServerError)
			return
		}
		if events == nil {
			events = []season.Event{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}

func PlayersHandler(store season.SeasonStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.GetAllPlayers()
		if err != nil {
			log.Error("Failed to get players", "error", err)
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		if players == nil {
			players = []season.PlayerInfo{}
		}
		writeJSON(w, http.StatusOK, players)
	}
}

// RunsHandler lists the most recent persisted runs. ?limit=N overrides the
// store default.
func RunsHandler(store season.SeasonStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		runs, err := store.GetRuns(limit)
		if err != nil {
			log.Error("Failed to get runs", "error", err)
			http.Error(w, "Failed to get runs", http.StatusInternalServerError)
			return
		}
		if runs == nil {
			runs = []season.Run{}
		}
		writeJSON(w, http.StatusOK, runs)
	}
}

// ImportEventsHandler stores the events of a results CSV posted as the
// request body. With recompute=true the standings are recomputed afterwards.
func ImportEventsHandler(processor *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		events, err := season.ParseResultsCSV(http.MaxBytesReader(w, r.Body, maxImportSize))
		if err != nil {
			log.Warn("Rejected results import", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		imported, err := processor.Import(events)
		if err != nil {
			log.Error("Failed to import events", "error", err)
			http.Error(w, "Failed to import events", http.StatusInternalServerError)
			return
		}

		response := struct {
			Imported int         `json:"imported"`
			Run      *RunSummary `json:"run,omitempty"`
		}{Imported: imported}

		if r.URL.Query().Get("recompute") == "true" {
			result, err := processor.Run(IsDryRunFromContext(r))
			if err != nil {
				log.Error("Recompute after import failed", "error", err)
				http.Error(w, "Imported, but failed to compute standings: "+err.Error(), runStatus(err))
				return
			}
			summary := summarize(result)
			response.Run = &summary
		}
		writeJSON(w, http.StatusOK, response)
	}
}
