package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/season-standings/internal/database"
	"github.com/mauv0809/season-standings/internal/season"
)

const (
	numPlayers = 12
	numEvents  = 20
	raceRounds = 3
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "season.db",
		"MIGRATIONS_DIR":    "./migrations",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := season.New(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	players := make([]season.PlayerInfo, numPlayers)
	for i := range players {
		players[i] = season.PlayerInfo{
			ID:   fmt.Sprintf("player-%d", i+1),
			Name: fmt.Sprintf("Seeder Player %c", 'A'+i),
		}
	}
	if err := store.UpsertPlayers(players); err != nil {
		log.Fatalf("Failed to insert players: %s", err)
	}
	log.Info("Ensured dummy players exist.", "count", len(players))

	startTime := time.Now()
	firstEvent := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -7*numEvents)
	for i := 0; i < numEvents; i++ {
		event := season.Event{
			ID:   uuid.NewString(),
			Name: fmt.Sprintf("Week %d", i+1),
			Date: firstEvent.AddDate(0, 0, 7*i),
			Kind: season.KindPoints,
		}
		if i%3 == 2 {
			event.Kind = season.KindRace
		}

		results := seedResults(rng, event.Kind, players)
		if err := store.UpsertEvent(event); err != nil {
			log.Fatalf("Failed to insert event %s: %s", event.Name, err)
		}
		if err := store.ReplaceResults(event.ID, results); err != nil {
			log.Fatalf("Failed to insert results for %s: %s", event.Name, err)
		}
		log.Info("Inserted event", "name", event.Name, "kind", event.Kind, "rows", len(results))
	}

	log.Info("Successfully seeded season.", "events", numEvents, "duration", time.Since(startTime))
}

// seedResults picks a random subset of players to attend. Points events get
// positional points, races get finish times over several rounds.
func seedResults(rng *rand.Rand, kind season.EventKind, players []season.PlayerInfo) []season.Result {
	attending := rng.Perm(len(players))[:len(players)/2+rng.Intn(len(players)/2)]

	var results []season.Result
	if kind == season.KindRace {
		for r := 1; r <= raceRounds; r++ {
			for _, idx := range attending {
				t := 40 + rng.Float64()*10
				results = append(results, season.Result{
					Round:      fmt.Sprintf("heat-%d", r),
					PlayerID:   players[idx].ID,
					PlayerName: players[idx].Name,
					Score:      &t,
				})
			}
		}
		return results
	}

	for pos, idx := range attending {
		points := float64(len(attending) - pos)
		results = append(results, season.Result{
			PlayerID:   players[idx].ID,
			PlayerName: players[idx].Name,
			Score:      &points,
		})
	}
	return results
}
