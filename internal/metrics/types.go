package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	StatsRequests        *prometheus.CounterVec
	AggregationDuration  *prometheus.HistogramVec
	PerformancesRecorded *prometheus.CounterVec
	Milestones           *prometheus.CounterVec
	SlackNotifSent       prometheus.Counter
	SlackNotifFailed     prometheus.Counter
	StartupTimeSeconds   prometheus.Gauge
}

// Counter keys kept in the metrics table.
const (
	KeyEventsProcessed      = "events_processed"
	KeyPerformancesRecorded = "performances_recorded"
	KeySummariesSent        = "summaries_sent"
	keyMilestonePrefix      = "milestones_"
)

// MilestoneKey is the persisted counter key for a milestone kind.
func MilestoneKey(kind string) string {
	return keyMilestonePrefix + kind
}
