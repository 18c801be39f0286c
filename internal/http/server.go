package http

import (
	"net/http"

	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/config"
	"github.com/mauv0809/cricket-stats/internal/http/handlers"
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"github.com/mauv0809/cricket-stats/internal/notifier"
	"github.com/mauv0809/cricket-stats/internal/processor"
	"github.com/mauv0809/cricket-stats/internal/pubsub"
	"github.com/mauv0809/cricket-stats/internal/stats"
	"github.com/rs/cors"
)

func NewServer(store club.ClubStore, reporter stats.Reporter, metricsSvc metrics.Metrics, metricsHandler http.Handler, counters metrics.MetricsStore, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Reporter:       reporter,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Counters:       counters,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	server.handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(server.Router)
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Mutations add adminMiddleware, Slack commands add slackVerification.
	admin := adminMiddleware
	slackAuth := slackVerification(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("GET /api/stats/batting", Chain(handlers.BattingStatsHandler(s.Reporter), paramsMiddleware))
	s.Router.Handle("GET /api/stats/bowling", Chain(handlers.BowlingStatsHandler(s.Reporter), paramsMiddleware))
	s.Router.Handle("GET /api/stats/breakdown", Chain(handlers.BreakdownHandler(s.Reporter), paramsMiddleware))

	s.Router.Handle("GET /api/players", Chain(handlers.ListPlayersHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/players", Chain(handlers.CreatePlayerHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("PUT /api/players", Chain(handlers.UpdatePlayerHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("GET /api/players/{id}", Chain(handlers.GetPlayerHandler(s.Store), paramsMiddleware))
	s.Router.Handle("PUT /api/players/{id}", Chain(handlers.UpdatePlayerHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("GET /api/players/{id}/stats", Chain(handlers.PlayerDetailHandler(s.Reporter), paramsMiddleware))

	s.Router.Handle("GET /api/matches", Chain(handlers.ListMatchesHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/matches", Chain(handlers.CreateMatchHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("PUT /api/matches/{id}", Chain(handlers.UpdateMatchHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("DELETE /api/matches/{id}", Chain(handlers.DeleteMatchHandler(s.Store), paramsMiddleware, admin))

	s.Router.Handle("POST /api/batting", Chain(handlers.RecordBattingHandler(s.Store, s.pubsub, s.Metrics, s.Counters), paramsMiddleware, admin))
	s.Router.Handle("POST /api/bowling", Chain(handlers.RecordBowlingHandler(s.Store, s.pubsub, s.Metrics, s.Counters), paramsMiddleware, admin))

	s.Router.Handle("POST /api/auth/login", Chain(handlers.LoginHandler(s.Cfg), paramsMiddleware))
	s.Router.Handle("POST /api/auth/logout", Chain(handlers.LogoutHandler(s.Cfg), paramsMiddleware))
	s.Router.Handle("GET /api/counters", Chain(handlers.CountersHandler(s.Counters), paramsMiddleware, admin))

	s.Router.Handle("POST /pubsub/performance-recorded", Chain(handlers.PerformanceRecordedHandler(s.Processor, s.pubsub), paramsMiddleware))
	s.Router.Handle("POST /tasks/send-summary", Chain(handlers.SendSummaryHandler(s.Processor), paramsMiddleware))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(handlers.LeaderboardCommandHandler(s.Reporter, s.Notifier), paramsMiddleware, slackAuth))
	s.Router.Handle("POST /slack/command/player-stats", Chain(handlers.PlayerStatsCommandHandler(s.Store, s.Reporter, s.Notifier), paramsMiddleware, slackAuth))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
