package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/club"
	"github.com/mauv0809/cricket-stats/internal/cricket"
)

// matchRequest is the body of match create and update calls. Date accepts
// either a calendar day or a full RFC 3339 timestamp.
type matchRequest struct {
	Date      string            `json:"date"`
	Opponent  string            `json:"opponent"`
	Venue     cricket.Venue     `json:"venue"`
	Overs     int               `json:"overs"`
	MatchType cricket.MatchType `json:"matchType"`
}

func (req matchRequest) toMatch(id string) (*cricket.Match, error) {
	match := &cricket.Match{
		ID:        id,
		Opponent:  req.Opponent,
		Venue:     req.Venue,
		Overs:     req.Overs,
		MatchType: req.MatchType,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		match.Date = date
	}
	if err := match.Validate(); err != nil {
		return nil, err
	}
	return match, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", cricket.ErrValidation, s)
	}
	return t.UTC(), nil
}

func ListMatchesHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := store.GetAllMatches(r.Context())
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to get matches from store", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch matches")
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func CreateMatchHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		match, err := req.toMatch("")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := store.CreateMatch(r.Context(), match); err != nil {
			log.FromContext(r.Context()).Error("Failed to create match", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create match")
			return
		}
		log.FromContext(r.Context()).Info("Created match", "match_id", match.ID, "opponent", match.Opponent, "match_type", match.MatchType)
		writeJSON(w, http.StatusCreated, match)
	}
}

func UpdateMatchHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		match, err := req.toMatch(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		err = store.UpdateMatch(r.Context(), match)
		if errors.Is(err, club.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Match not found")
			return
		}
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to update match", "error", err, "match_id", match.ID)
			writeError(w, http.StatusInternalServerError, "Failed to update match")
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func DeleteMatchHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		err := store.DeleteMatch(r.Context(), matchID)
		if errors.Is(err, club.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Match not found")
			return
		}
		if err != nil {
			log.FromContext(r.Context()).Error("Failed to delete match", "error", err, "match_id", matchID)
			writeError(w, http.StatusInternalServerError, "Failed to delete match")
			return
		}
		log.FromContext(r.Context()).Info("Deleted match", "match_id", matchID)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
