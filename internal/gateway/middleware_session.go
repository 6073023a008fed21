package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/session"
	"github.com/MKhiriev/go-gtd/internal/utils"
)

const (
	SessionCookie = "gtd_session"
	SessionHeader = "X-Session-ID"
)

type principalKey struct{}

// principal is the user a request acts for.
type principal struct {
	userID int64
	login  string
}

func withPrincipal(ctx context.Context, p principal) context.Context {
	return context.WithValue(utils.WithUserID(ctx, p.userID), principalKey{}, p)
}

func principalFrom(ctx context.Context) principal {
	p, _ := ctx.Value(principalKey{}).(principal)
	return p
}

// sessionID reads the session cookie, then the session header.
func sessionID(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return strings.TrimSpace(r.Header.Get(SessionHeader))
}

// requireSession resolves the acting user. With auth disabled every request
// acts as the default user; otherwise a live session is required and the
// backend is never called without one.
func (g *Gateway) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.features.Auth {
			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal{userID: g.defaultUserID})))
			return
		}

		id := sessionID(r)
		if id == "" {
			writeError(w, r, ErrNoSession)
			return
		}

		sess, err := g.sessions.Get(r.Context(), id)
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrInvalidSessionID) {
			writeError(w, r, ErrNoSession)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := g.sessions.Touch(r.Context(), id); err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("error extending session")
		}

		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal{userID: sess.UserID, login: sess.Login})))
	})
}
