package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
)

func (g *Gateway) register(w http.ResponseWriter, r *http.Request) {
	g.startSession(w, r, g.backend.Register, http.StatusCreated)
}

func (g *Gateway) login(w http.ResponseWriter, r *http.Request) {
	g.startSession(w, r, g.backend.Login, http.StatusOK)
}

func (g *Gateway) startSession(
	w http.ResponseWriter,
	r *http.Request,
	authenticate func(context.Context, models.Credentials) (models.User, error),
	status int,
) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err)
		return
	}
	creds.Login = strings.TrimSpace(creds.Login)
	if creds.Login == "" || creds.Password == "" {
		writeError(w, r, ErrMissingCredentials)
		return
	}

	user, err := authenticate(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sess, err := g.sessions.Create(r.Context(), user.UserID, user.Login)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   g.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("session started")
	writeJSON(w, r, models.LoginResponse{SessionID: sess.ID, User: user}, status)
}

// logout is idempotent: an unknown or missing session still clears the cookie.
func (g *Gateway) logout(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		if err := g.sessions.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
