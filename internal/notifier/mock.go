package notifier

import (
	"sync"

	"github.com/mauv0809/season-standings/internal/standings"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for send functions
	SendStandingsFunc    func(st *standings.Standings, season string, dryRun bool) error
	SendEventSummaryFunc func(st *standings.Standings, eventID string, dryRun bool) error
	SendChampionsFunc    func(reigns []standings.Reign, dryRun bool) error

	// Call records
	SendStandingsCalls []struct {
		Standings *standings.Standings
		Season    string
		DryRun    bool
	}
	SendEventSummaryCalls []struct {
		EventID string
		DryRun  bool
	}
	SendChampionsCalls [][]standings.Reign

	// Spies for format functions
	FormatStandingsResponseFunc      func(players []standings.PlayerStanding) (any, error)
	FormatPlayerStandingResponseFunc func(player *standings.PlayerStanding, query string) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)
	FormatChampionsResponseFunc      func(reigns []standings.Reign) (any, error)

	// Call records for format functions
	LastStandingsResponse      any
	LastPlayerStandingResponse any
	LastPlayerNotFoundResponse any
	LastChampionsResponse      any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = nil
	m.SendEventSummaryCalls = nil
	m.SendChampionsCalls = nil
	m.LastStandingsResponse = nil
	m.LastPlayerStandingResponse = nil
	m.LastPlayerNotFoundResponse = nil
	m.LastChampionsResponse = nil
}

func (m *Mock) SendStandings(st *standings.Standings, season string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, struct {
		Standings *standings.Standings
		Season    string
		DryRun    bool
	}{st, season, dryRun})
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(st, season, dryRun)
	}
	return nil
}

func (m *Mock) SendEventSummary(st *standings.Standings, eventID string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEventSummaryCalls = append(m.SendEventSummaryCalls, struct {
		EventID string
		DryRun  bool
	}{eventID, dryRun})
	if m.SendEventSummaryFunc != nil {
		return m.SendEventSummaryFunc(st, eventID, dryRun)
	}
	return nil
}

func (m *Mock) SendChampions(reigns []standings.Reign, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendChampionsCalls = append(m.SendChampionsCalls, reigns)
	if m.SendChampionsFunc != nil {
		return m.SendChampionsFunc(reigns, dryRun)
	}
	return nil
}

func (m *Mock) FormatStandingsResponse(players []standings.PlayerStanding) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatStandingsResponseFunc != nil {
		resp, err := m.FormatStandingsResponseFunc(players)
		m.LastStandingsResponse = resp
		return resp, err
	}
	return "formatted_standings", nil
}

func (m *Mock) FormatPlayerStandingResponse(player *standings.PlayerStanding, query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerStandingResponseFunc != nil {
		resp, err := m.FormatPlayerStandingResponseFunc(player, query)
		m.LastPlayerStandingResponse = resp
		return resp, err
	}
	return "formatted_player_standing", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerNotFoundResponseFunc != nil {
		resp, err := m.FormatPlayerNotFoundResponseFunc(query)
		m.LastPlayerNotFoundResponse = resp
		return resp, err
	}
	return "formatted_player_not_found", nil
}

func (m *Mock) FormatChampionsResponse(reigns []standings.Reign) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatChampionsResponseFunc != nil {
		resp, err := m.FormatChampionsResponseFunc(reigns)
		m.LastChampionsResponse = resp
		return resp, err
	}
	return "formatted_champions", nil
}
