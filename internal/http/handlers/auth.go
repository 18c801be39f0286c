package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/cricket-stats/internal/config"
)

const sessionTTL = 7 * 24 * time.Hour

func LoginHandler(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if cfg.AdminPassword == "" {
			log.Error("Login attempted but ADMIN_PASSWORD is not configured")
			writeError(w, http.StatusInternalServerError, "Server configuration error")
			return
		}
		if subtle.ConstantTimeCompare([]byte(body.Password), []byte(cfg.AdminPassword)) != 1 {
			log.FromContext(r.Context()).Warn("Rejected admin login")
			writeError(w, http.StatusUnauthorized, "Invalid password")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     AdminCookieName,
			Value:    AdminCookieValue,
			Path:     "/",
			MaxAge:   int(sessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   cfg.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func LogoutHandler(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     AdminCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cfg.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
