package gateway

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/adapter"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/utils"
)

// Clients only ever see these fixed messages; backend detail stays in logs.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Invalid request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusNotFound:            "Not found",
	http.StatusConflict:            "Conflict",
	http.StatusTooManyRequests:     "Too many requests",
	http.StatusInternalServerError: "Internal Server Error",
}

var errorStatusMap = map[error]int{
	ErrNoSession:          http.StatusUnauthorized,
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrInvalidID:          http.StatusBadRequest,
	ErrMissingCredentials: http.StatusBadRequest,
	ErrFeatureDisabled:    http.StatusNotFound,
	ErrRateLimited:        http.StatusTooManyRequests,

	adapter.ErrBadRequest:   http.StatusBadRequest,
	adapter.ErrUnauthorized: http.StatusUnauthorized,
	adapter.ErrNotFound:     http.StatusNotFound,
	adapter.ErrConflict:     http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, statusMessages[status], status)
}
