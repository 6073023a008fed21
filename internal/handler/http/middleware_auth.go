package http

import (
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/utils"
)

// auth resolves the acting user and stores it under [utils.UserIDCtxKey].
//
// With the auth feature on, a valid "Authorization: Bearer <jwt>" header is
// required and its subject is the user id. With it off, every request acts
// as the configured default user.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.features.Auth {
			next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), h.defaultUserID)))
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Info().Err(err).Msg("token rejected")
			utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), token.UserID)))
	})
}

// requireFeature hides a route group when enabled is false.
func requireFeature(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				writeError(w, r, ErrFeatureDisabled)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
