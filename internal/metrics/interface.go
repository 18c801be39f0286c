package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncStatsRequests(view string)
	ObserveAggregationDuration(view string, seconds float64)
	IncPerformancesRecorded(kind string)
	IncMilestones(kind string)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore persists named counters across restarts.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
