package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		StatsRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cricket_stats_requests_total",
			Help: "The total number of statistics views computed, by view.",
		}, []string{"view"}),
		AggregationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cricket_aggregation_duration_seconds",
			Help:    "The duration of computing a statistics view, including record fetches.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"view"}),
		PerformancesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cricket_performances_recorded_total",
			Help: "The total number of batting and bowling performances saved.",
		}, []string{"kind"}),
		Milestones: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cricket_milestones_total",
			Help: "The total number of milestones detected, by kind.",
		}, []string{"kind"}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cricket_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.StatsRequests,
		s.AggregationDuration,
		s.PerformancesRecorded,
		s.Milestones,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncStatsRequests(view string) {
	s.StatsRequests.WithLabelValues(view).Inc()
}

func (s *Service) ObserveAggregationDuration(view string, seconds float64) {
	s.AggregationDuration.WithLabelValues(view).Observe(seconds)
}

func (s *Service) IncPerformancesRecorded(kind string) {
	s.PerformancesRecorded.WithLabelValues(kind).Inc()
}

func (s *Service) IncMilestones(kind string) {
	s.Milestones.WithLabelValues(kind).Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
