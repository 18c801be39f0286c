package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/config"
	"github.com/mauv0809/cricket-stats/internal/database"
	server "github.com/mauv0809/cricket-stats/internal/http"
	"github.com/mauv0809/cricket-stats/internal/metrics"
	"github.com/mauv0809/cricket-stats/internal/notifier/slack"
	"github.com/mauv0809/cricket-stats/internal/processor"
	"github.com/mauv0809/cricket-stats/internal/pubsub"
	"github.com/mauv0809/cricket-stats/internal/stats"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	clubStore := club.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	counters := metrics.New(db)
	reporter := stats.NewService(clubStore, metricsSvc)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	processor := processor.New(clubStore, reporter, notifier, metricsSvc, counters)

	var events pubsub.PubSubClient
	if cfg.ProjectID == "" {
		log.Warn("GCP_PROJECT not set, delivering events in-process")
		local := pubsub.NewLocal()
		local.Subscribe(pubsub.EventPerformanceRecorded, func(data []byte) error {
			var evt pubsub.PerformanceRecorded
			if err := local.ProcessMessage(data, &evt); err != nil {
				return err
			}
			return processor.HandlePerformanceRecorded(context.Background(), evt, false)
		})
		events = local
	} else {
		events = pubsub.New(cfg.ProjectID)
	}
	defer events.Close()

	s := server.NewServer(
		clubStore,
		reporter,
		metricsSvc,
		metricsHandler,
		counters,
		cfg,
		notifier,
		processor,
		events,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
