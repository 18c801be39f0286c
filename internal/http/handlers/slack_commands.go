package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/notifier"
	"github.com/mauv0809/cricket-stats/internal/stats"
	"golang.org/x/sync/errgroup"
)

// LeaderboardSize is the number of batters and bowlers a leaderboard lists.
const LeaderboardSize = 10

func LeaderboardCommandHandler(reporter stats.Reporter, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		matchType, _ := parseFormat(r.FormValue("text"))
		log.Info("Received leaderboard command", "match_type", matchType)

		var batters []stats.PlayerBattingRow
		var bowlers []stats.PlayerBowlingRow
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			batters, err = reporter.PlayerBattingStats(ctx, matchType)
			return err
		})
		g.Go(func() error {
			var err error
			bowlers, err = reporter.PlayerBowlingStats(ctx, matchType)
			return err
		})
		if err := g.Wait(); err != nil {
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			log.Error("Failed to get player stats", "error", err)
			return
		}
		if len(batters) > LeaderboardSize {
			batters = batters[:LeaderboardSize]
		}
		if len(bowlers) > LeaderboardSize {
			bowlers = bowlers[:LeaderboardSize]
		}

		msg, err := notifier.FormatLeaderboardResponse(matchType, batters, bowlers)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

func PlayerStatsCommandHandler(store club.ClubStore, reporter stats.Reporter, notifier notifier.Notifier) http.HandlerFunc {
	resolver := club.NewPlayerResolver(store)
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		playerName, matchType := parsePlayerStatsText(r.FormValue("text"))
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}
		log.Info("Received player stats command", "player", playerName, "match_type", matchType)

		player, suggestions, err := resolver.Resolve(r.Context(), playerName)
		if err != nil {
			http.Error(w, "Failed to look up player", http.StatusInternalServerError)
			log.Error("Failed to resolve player", "error", err, "player", playerName)
			return
		}

		var msg any
		if player == nil {
			log.Warn("Could not find player", "player", playerName, "suggestions", len(suggestions))
			names := make([]string, 0, len(suggestions))
			for _, s := range suggestions {
				names = append(names, s.Player.FullName)
			}
			msg, err = notifier.FormatPlayerNotFoundResponse(playerName, names)
		} else {
			var detail *stats.PlayerDetail
			detail, err = reporter.PlayerDetail(r.Context(), player.ID, matchType)
			if err != nil {
				http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
				log.Error("Failed to get player stats", "error", err, "player_id", player.ID)
				return
			}
			msg, err = notifier.FormatPlayerStatsResponse(player, matchType, detail)
		}
		if err != nil {
			http.Error(w, "Failed to format player stats", http.StatusInternalServerError)
			log.Error("Failed to format player stats", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}
