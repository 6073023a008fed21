package http

import (
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.DashboardService.Stats(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, stats, http.StatusOK)
}

func (h *Handler) searchTasks(w http.ResponseWriter, r *http.Request) {
	params, err := h.searchParams(r, models.ResourceTask)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.SearchService.Tasks(r.Context(), userID(r), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) searchProjects(w http.ResponseWriter, r *http.Request) {
	params, err := h.searchParams(r, models.ResourceProject)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.SearchService.Projects(r.Context(), userID(r), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, page, http.StatusOK)
}

// searchParams reads the list parameters of a search. The term comes from
// "q", falling back to "search".
func (h *Handler) searchParams(r *http.Request, resource string) (models.ListParams, error) {
	q := r.URL.Query()
	params, err := validators.ParseListParams(q, resource, h.maxPageSize)
	if err != nil {
		return models.ListParams{}, err
	}
	if term := q.Get("q"); term != "" {
		params.Search = term
	}
	return params, nil
}

func (h *Handler) parseQuickAdd(w http.ResponseWriter, r *http.Request) {
	var req models.QuickAddRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	draft, err := h.services.QuickAddService.Parse(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, draft, http.StatusOK)
}

func (h *Handler) quickAdd(w http.ResponseWriter, r *http.Request) {
	var req models.QuickAddRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.QuickAddService.Create(r.Context(), userID(r), req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, task, http.StatusCreated)
}

func (h *Handler) exportData(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.services.TransferService.Export(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="gtd-export.json"`)
	writeJSON(w, r, bundle, http.StatusOK)
}

func (h *Handler) importData(w http.ResponseWriter, r *http.Request) {
	var bundle models.ExportBundle
	if err := decodeJSON(w, r, &bundle); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.TransferService.Import(r.Context(), userID(r), bundle)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result, http.StatusCreated)
}
