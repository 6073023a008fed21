// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := validators.ParseTaskFilter(r.URL.Query(), h.maxPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.TaskService.List(r.Context(), userID(r), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) todayTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := validators.ParseTaskFilter(r.URL.Query(), h.maxPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.TaskService.Today(r.Context(), userID(r), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) weekTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := validators.ParseTaskFilter(r.URL.Query(), h.maxPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.TaskService.Week(r.Context(), userID(r), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Get(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, task, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var in models.TaskCreate
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Create(r.Context(), userID(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, task, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.TaskUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Update(r.Context(), userID(r), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TaskService.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
