package http

import (
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	filter, err := validators.ParseProjectFilter(r.URL.Query(), h.maxPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ProjectService.List(r.Context(), userID(r), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int("items", len(page.Items)).Int("total", page.Total).Msg("projects listed")
	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) weeklyProjects(w http.ResponseWriter, r *http.Request) {
	filter, err := validators.ParseProjectFilter(r.URL.Query(), h.maxPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ProjectService.Weekly(r.Context(), userID(r), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.Get(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, project, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var in models.ProjectCreate
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.Create(r.Context(), userID(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, project, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProjectUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.Update(r.Context(), userID(r), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.ProjectService.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
