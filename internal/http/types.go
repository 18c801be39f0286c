package http

import (
	"net/http"

	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/config"
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"github.com/mauv0809/cricket-stats/internal/notifier"
	"github.com/mauv0809/cricket-stats/internal/processor"
	"github.com/mauv0809/cricket-stats/internal/pubsub"
	"github.com/mauv0809/cricket-stats/internal/stats"
)

type Server struct {
	Store          club.ClubStore
	Reporter       stats.Reporter
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Counters       metrics.MetricsStore
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	handler        http.Handler
}
