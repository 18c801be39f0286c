package processor

import (
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"github.com/mauv0809/cricket-stats/internal/stats"
)

// SummaryTop is the number of batters and bowlers in a posted summary.
const SummaryTop = 5

// Processor reacts to recorded performances and posts digests.
type Processor struct {
	store    Store
	reporter stats.Reporter
	notifier Notifier
	metrics  metrics.Metrics
	counters metrics.MetricsStore
}
