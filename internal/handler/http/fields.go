package http

import (
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

func (h *Handler) listFields(w http.ResponseWriter, r *http.Request) {
	params, err := validators.ParseListParams(r.URL.Query(), models.ResourceField, h.maxPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.FieldService.List(r.Context(), userID(r), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) getField(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	field, err := h.services.FieldService.Get(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, field, http.StatusOK)
}

func (h *Handler) createField(w http.ResponseWriter, r *http.Request) {
	var in models.FieldCreate
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	field, err := h.services.FieldService.Create(r.Context(), userID(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, field, http.StatusCreated)
}

func (h *Handler) updateField(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.FieldUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	field, err := h.services.FieldService.Update(r.Context(), userID(r), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, field, http.StatusOK)
}

func (h *Handler) deleteField(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.FieldService.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
