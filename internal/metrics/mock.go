package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	statsRequests        map[string]int
	aggregationDurations map[string][]float64
	performancesRecorded map[string]int
	milestones           map[string]int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		statsRequests:        make(map[string]int),
		aggregationDurations: make(map[string][]float64),
		performancesRecorded: make(map[string]int),
		milestones:           make(map[string]int),
	}
}

func (m *Mock) IncStatsRequests(view string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsRequests[view]++
}

func (m *Mock) ObserveAggregationDuration(view string, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregationDurations[view] = append(m.aggregationDurations[view], seconds)
}

func (m *Mock) IncPerformancesRecorded(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.performancesRecorded[kind]++
}

func (m *Mock) IncMilestones(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.milestones[kind]++
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

// StatsRequests returns how many times a view was computed.
func (m *Mock) StatsRequests(view string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsRequests[view]
}

// AggregationDurations returns the durations observed for a view.
func (m *Mock) AggregationDurations(view string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.aggregationDurations[view]...)
}

// PerformancesRecorded returns the number of recorded performances of a kind.
func (m *Mock) PerformancesRecorded(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.performancesRecorded[kind]
}

// Milestones returns the number of milestones of a kind.
func (m *Mock) Milestones(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.milestones[kind]
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

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}

// MockStore is an in-memory MetricsStore.
type MockStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{values: make(map[string]int)}
}

func (m *MockStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key]++
}

func (m *MockStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

// Get returns the current value of a key.
func (m *MockStore) Get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}
