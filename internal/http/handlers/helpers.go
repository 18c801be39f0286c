package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/cricket"
	"github.com/slack-go/slack"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// AdminCookieName is the session cookie set by a successful login.
const (
	AdminCookieName  = "admin_session"
	AdminCookieValue = "authenticated"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// writeError sends {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// WriteError is exported for the middleware in the parent package.
func WriteError(w http.ResponseWriter, status int, msg string) {
	writeError(w, status, msg)
}

// matchTypeParam reads the matchType query parameter. Missing or unknown
// values select every format.
func matchTypeParam(r *http.Request) cricket.MatchType {
	return cricket.ParseMatchType(r.URL.Query().Get("matchType"))
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg any) {
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	writeJSON(w, http.StatusOK, slackMsg)
}

// parseFormat matches a format typed in chat, ignoring case. "all" and
// unknown text select every format.
func parseFormat(text string) (cricket.MatchType, bool) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "all") {
		return cricket.MatchTypeAll, true
	}
	for _, mt := range cricket.MatchTypes {
		if strings.EqualFold(text, string(mt)) {
			return mt, true
		}
	}
	return cricket.MatchTypeAll, false
}

// parsePlayerStatsText splits the text of a player-stats command into the
// player name and an optional trailing format.
// Expected formats: "Arjun Mehta", "Arjun Mehta div 3", "Arjun all"
func parsePlayerStatsText(text string) (playerName string, matchType cricket.MatchType) {
	parts := strings.Fields(text)
	matchType = cricket.MatchTypeAll
	// Formats span up to three words ("Home and Home"). Try the longest first
	// and always leave at least one word for the name.
	for n := min(3, len(parts)-1); n >= 1; n-- {
		if mt, ok := parseFormat(strings.Join(parts[len(parts)-n:], " ")); ok {
			return strings.Join(parts[:len(parts)-n], " "), mt
		}
	}
	return strings.Join(parts, " "), matchType
}
