package processor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/season-standings/internal/metrics"
	"github.com/mauv0809/season-standings/internal/pubsub"
	"github.com/mauv0809/season-standings/internal/scoring"
	"github.com/mauv0809/season-standings/internal/season"
	"github.com/mauv0809/season-standings/internal/standings"
)

// New creates a new Processor. pubsub may be nil, in which case nothing is published.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, seasonName string) *Processor {
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
		season:   seasonName,
	}
}

// Run recomputes the standings from every stored event. On success the new
// snapshot replaces the persisted one and is reported; on failure nothing is
// written. A dry run computes and logs the reports without persisting,
// posting or publishing.
func (p *Processor) Run(dryRun bool) (*RunResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	log.Info("Starting standings run...", "dryRun", dryRun)
	startTime := time.Now()
	p.metrics.IncRuns()
	defer func() {
		p.metrics.ObserveRunDuration(time.Since(startTime).Seconds())
	}()

	result, err := p.compute(dryRun)
	if err != nil {
		p.metrics.IncRunFailures()
		log.Error("Standings run failed", "error", err)
		return nil, err
	}
	p.metrics.SetRankedPlayers(len(result.Standings.Players))

	if !dryRun {
		if err := p.store.SaveStandings(result.RunID, result.Standings); err != nil {
			p.metrics.IncRunFailures()
			log.Error("Failed to save standings", "error", err, "runID", result.RunID)
			return nil, fmt.Errorf("failed to save standings: %w", err)
		}
	}

	p.report(result.Standings, dryRun)

	if !dryRun {
		p.publish(result)
	}

	log.Info("Standings run finished.", "runID", result.RunID, "events", len(result.Standings.Events), "players", len(result.Standings.Players))
	return result, nil
}

func (p *Processor) compute(dryRun bool) (*RunResult, error) {
	events, err := p.store.ListEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	results := make([]standings.EventResults, 0, len(events))
	skipped := 0
	for _, event := range events {
		rows, err := p.store.GetEventResults(event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load results for event %s: %w", event.ID, err)
		}
		entries, n := toEntries(event, rows)
		skipped += n
		results = append(results, standings.EventResults{
			Event:   standings.Event{ID: event.ID, Name: event.Name, Date: event.Date},
			Entries: entries,
		})
	}
	if skipped > 0 {
		log.Warn("Skipped result rows without a player or score", "count", skipped)
		p.metrics.AddSkippedRows(skipped)
	}

	st, err := standings.Compute(results)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		RunID:       uuid.NewString(),
		DryRun:      dryRun,
		SkippedRows: skipped,
		Standings:   st,
	}, nil
}

// toEntries converts raw rows into positional entries. Race rows are scored
// per round first. It also returns how many rows were dropped.
func toEntries(event season.Event, rows []season.Result) ([]standings.Entry, int) {
	skipped := 0
	for _, r := range rows {
		if r.PlayerID == "" || r.Score == nil {
			skipped++
		}
	}

	if event.Kind == season.KindRace {
		finishers := make([]scoring.Finisher, 0, len(rows))
		for _, r := range rows {
			finishers = append(finishers, scoring.Finisher{
				PlayerID:   r.PlayerID,
				PlayerName: r.PlayerName,
				Round:      r.Round,
				Time:       r.Score,
			})
		}
		scores := scoring.ScoreEvent(finishers)
		entries := make([]standings.Entry, 0, len(scores))
		for _, s := range scores {
			entries = append(entries, standings.Entry{PlayerID: s.PlayerID, PlayerName: s.PlayerName, Score: s.Points})
		}
		return entries, skipped
	}

	entries := make([]standings.Entry, 0, len(rows))
	for _, r := range rows {
		if r.PlayerID == "" || r.Score == nil {
			continue
		}
		entries = append(entries, standings.Entry{PlayerID: r.PlayerID, PlayerName: r.PlayerName, Score: *r.Score})
	}
	return entries, skipped
}

func (p *Processor) report(st *standings.Standings, dryRun bool) {
	if err := p.notifier.SendStandings(st, p.season, dryRun); err != nil {
		log.Error("Failed to send standings", "error", err)
	}
	if latest, ok := st.LatestEvent(); ok {
		if err := p.notifier.SendEventSummary(st, latest.ID, dryRun); err != nil {
			log.Error("Failed to send event summary", "error", err, "eventID", latest.ID)
		}
	}
	if len(st.Champions) > 0 {
		if err := p.notifier.SendChampions(st.Champions, dryRun); err != nil {
			log.Error("Failed to send champions", "error", err)
		}
	}
}

func (p *Processor) publish(result *RunResult) {
	if p.pubsub == nil {
		return
	}
	msg := pubsub.StandingsComputed{
		RunID:       result.RunID,
		Season:      p.season,
		PlayerCount: len(result.Standings.Players),
		EventCount:  len(result.Standings.Events),
		ComputedAt:  time.Now().UTC(),
	}
	if latest, ok := result.Standings.LatestEvent(); ok {
		msg.LatestEventID = latest.ID
	}
	if champ, ok := result.Standings.CurrentChampion(); ok {
		msg.ChampionID = champ.PlayerID
	}
	if err := p.pubsub.SendMessage(pubsub.EventStandingsComputed, msg); err != nil {
		log.Error("Failed to publish standings", "error", err, "runID", result.RunID)
	}
}

// Import stores events and their results, replacing any results already
// stored for the same events. The batch is written atomically: on error no
// event is stored. It returns the number of events written.
func (p *Processor) Import(events []season.EventWithResults) (int, error) {
	if err := p.store.ImportEvents(events); err != nil {
		return 0, fmt.Errorf("failed to import events: %w", err)
	}
	p.metrics.AddEventsImported(len(events))
	log.Info("Imported events", "count", len(events))
	return len(events), nil
}
