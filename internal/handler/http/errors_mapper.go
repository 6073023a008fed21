package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/service"
	"github.com/MKhiriev/go-gtd/internal/utils"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                     http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrFeatureDisabled:                 http.StatusNotFound,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrLoginTaken:              http.StatusConflict,
	service.ErrConflict:                http.StatusConflict,
}

var statusMessages = map[int]string{
	http.StatusBadRequest:   "Invalid request",
	http.StatusUnauthorized: "Unauthorized",
	http.StatusNotFound:     "Not found",
	http.StatusConflict:     "Conflict",
}

func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError renders err as the JSON error body. Validation errors become
// 422 with the offending fields; unknown errors are logged and reported as
// a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		log.Info().Err(err).Msg("validation failed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: verr.Error(), Fields: verr.Fields}, http.StatusUnprocessableEntity)
		return
	}

	status, target := statusFromError(err)
	if target == nil {
		log.Err(err).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request rejected")

	message := statusMessages[status]
	if status == http.StatusConflict || status == http.StatusUnauthorized {
		message = target.Error()
	}
	utils.WriteError(w, message, status)
}
