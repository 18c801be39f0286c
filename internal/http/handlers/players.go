package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/cricket"
)

func ListPlayersHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.GetAllPlayers(r.Context())
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to get players from store", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func GetPlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := store.GetPlayer(r.Context(), r.PathValue("id"))
		if errors.Is(err, club.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to get player", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func CreatePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var player cricket.Player
		if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := player.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := store.CreatePlayer(r.Context(), &player); err != nil {
			log.FromContext(r.Context()).Error("Failed to create player", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create player")
			return
		}
		log.FromContext(r.Context()).Info("Created player", "player_id", player.ID, "name", player.FullName)
		writeJSON(w, http.StatusCreated, player)
	}
}

// UpdatePlayerHandler applies a partial update. The player is named by the
// {id} path segment when the route has one, otherwise by the id in the body.
func UpdatePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch cricket.PlayerPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if id := r.PathValue("id"); id != "" {
			patch.ID = id
		}
		if patch.ID == "" {
			writeError(w, http.StatusBadRequest, "Player ID is required")
			return
		}

		player, err := store.GetPlayer(r.Context(), patch.ID)
		if errors.Is(err, club.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to get player", "error", err, "player_id", patch.ID)
			writeError(w, http.StatusInternalServerError, "Failed to update player")
			return
		}

		patch.Apply(player)
		if err := player.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := store.UpdatePlayer(r.Context(), player); err != nil {
			log.FromContext(r.Context()).Error("Failed to update player", "error", err, "player_id", patch.ID)
			writeError(w, http.StatusInternalServerError, "Failed to update player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}
