package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncStatsRequests("batting")
	s.IncStatsRequests("batting")
	s.IncStatsRequests("breakdown")
	s.IncMilestones("hundred")
	s.IncPerformancesRecorded("bowling")
	s.IncSlackNotifSent()
	s.IncSlackNotifFailed()
	s.SetStartupTime(1.5)
	s.ObserveAggregationDuration("batting", 0.01)

	t.Run("handler exposes registered metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		body, err := io.ReadAll(rr.Body)
		require.NoError(t, err)
		out := string(body)
		assert.Contains(t, out, `cricket_stats_requests_total{view="batting"} 2`)
		assert.Contains(t, out, `cricket_stats_requests_total{view="breakdown"} 1`)
		assert.Contains(t, out, `cricket_milestones_total{kind="hundred"} 1`)
		assert.Contains(t, out, `cricket_performances_recorded_total{kind="bowling"} 1`)
		assert.Contains(t, out, "cricket_slack_notifications_sent_total 1")
		assert.Contains(t, out, "cricket_slack_notifications_failed_total 1")
		assert.Contains(t, out, "cricket_startup_duration_seconds 1.5")
		assert.Contains(t, out, `cricket_aggregation_duration_seconds_count{view="batting"} 1`)
	})
}
