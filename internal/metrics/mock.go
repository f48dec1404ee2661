package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	runs             int
	runFailures      int
	runDurations     []float64
	rankedPlayers    int
	skippedRows      int
	eventsImported   int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		runDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs++
}

func (m *Mock) IncRunFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runFailures++
}

func (m *Mock) ObserveRunDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runDurations = append(m.runDurations, duration)
}

func (m *Mock) SetRankedPlayers(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankedPlayers = count
}

func (m *Mock) AddSkippedRows(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skippedRows += count
}

func (m *Mock) AddEventsImported(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsImported += count
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Runs returns the number of times IncRuns was called.
func (m *Mock) Runs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}

// RunFailures returns the number of times IncRunFailures was called.
func (m *Mock) RunFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runFailures
}

// RunDurations returns every observed run duration.
func (m *Mock) RunDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.runDurations...)
}

// RankedPlayers returns the last value passed to SetRankedPlayers.
func (m *Mock) RankedPlayers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rankedPlayers
}

// SkippedRows returns the sum passed to AddSkippedRows.
func (m *Mock) SkippedRows() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.skippedRows
}

// EventsImported returns the sum passed to AddEventsImported.
func (m *Mock) EventsImported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsImported
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
