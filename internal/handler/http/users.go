package http

import (
	"net/http"

	"github.com/MKhiriev/go-gtd/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Me(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateMe(r.Context(), userID(r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, user, http.StatusOK)
}
