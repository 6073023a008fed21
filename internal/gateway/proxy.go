package gateway

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-gtd/internal/adapter"
	"github.com/MKhiriev/go-gtd/internal/logger"
)

// resource binds a backend collection to its view shape.
type resource struct {
	name    string
	nameKey string
	one     func([]byte) (any, error)
	list    func([]byte) (page any, items, total int, err error)
}

func newResource[T any](name, nameKey string, normalize func(record) T) resource {
	return resource{
		name:    name,
		nameKey: nameKey,
		one: func(body []byte) (any, error) {
			return normalizeOne(body, normalize)
		},
		list: func(body []byte) (any, int, int, error) {
			page, err := normalizeList(body, normalize)
			return page, len(page.Items), page.Total, err
		},
	}
}

var (
	projects = newResource("projects", "project_name", normalizeProject)
	tasks    = newResource("tasks", "task_name", normalizeTask)
	fields   = newResource("fields", "field_name", normalizeField)
)

func (res resource) path() string {
	return "/api/" + res.name
}

func (res resource) itemPath(id int64) string {
	return res.path() + "/" + strconv.FormatInt(id, 10)
}

func (g *Gateway) forward(r *http.Request, method, path string, query url.Values, body []byte) (adapter.Response, error) {
	p := principalFrom(r.Context())
	return g.backend.Do(r.Context(), adapter.Call{
		UserID: p.userID,
		Login:  p.login,
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
}

// listQuery translates showCompleted into the backend's is_done filter.
// An explicit is_done always wins.
func listQuery(r *http.Request) url.Values {
	query := r.URL.Query()
	if query.Has("is_done") {
		return query
	}
	if show, err := strconv.ParseBool(query.Get("showCompleted")); err == nil && !show {
		query.Set("is_done", "false")
	}
	return query
}

func (g *Gateway) logForwarded(r *http.Request, resource string, items, total int) {
	logger.FromRequest(r).Info().
		Int64("user_id", principalFrom(r.Context()).userID).
		Str("resource", resource).
		Int("items", items).
		Int("total", total).
		Msg("request forwarded")
}

func (g *Gateway) listAt(res resource, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := g.forward(r, http.MethodGet, path, listQuery(r), nil)
		if err != nil {
			writeError(w, r, err)
			return
		}

		page, items, total, err := res.list(resp.Body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		g.logForwarded(r, res.name, items, total)
		writeJSON(w, r, page, http.StatusOK)
	}
}

func (g *Gateway) list(res resource) http.HandlerFunc {
	return g.listAt(res, res.path())
}

func (g *Gateway) get(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := g.forward(r, http.MethodGet, res.itemPath(id), nil, nil)
		if err != nil {
			writeError(w, r, err)
			return
		}
		g.respondOne(w, r, res, resp)
	}
}

func (g *Gateway) createAt(res resource, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := g.writeBody(w, r, res)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := g.forward(r, http.MethodPost, path, nil, body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		g.respondOne(w, r, res, resp)
	}
}

func (g *Gateway) create(res resource) http.HandlerFunc {
	return g.createAt(res, res.path())
}

func (g *Gateway) update(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		body, err := g.writeBody(w, r, res)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := g.forward(r, http.MethodPut, res.itemPath(id), nil, body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		g.respondOne(w, r, res, resp)
	}
}

func (g *Gateway) remove(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if _, err := g.forward(r, http.MethodDelete, res.itemPath(id), nil, nil); err != nil {
			writeError(w, r, err)
			return
		}

		g.logForwarded(r, res.name, 1, 1)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (g *Gateway) writeBody(w http.ResponseWriter, r *http.Request, res resource) ([]byte, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	return denormalize(body, res.nameKey)
}

func (g *Gateway) respondOne(w http.ResponseWriter, r *http.Request, res resource, resp adapter.Response) {
	view, err := res.one(resp.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	g.logForwarded(r, res.name, 1, 1)
	writeJSON(w, r, view, resp.Status)
}

// passthrough forwards bodies that need no reshaping.
func (g *Gateway) passthrough(name, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Method != http.MethodGet {
			var err error
			if body, err = readBody(w, r); err != nil {
				writeError(w, r, err)
				return
			}
		}

		resp, err := g.forward(r, r.Method, path, r.URL.Query(), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		g.logForwarded(r, name, 1, 1)
		writeRaw(w, r, resp.Body, resp.Status)
	}
}

func (g *Gateway) export(w http.ResponseWriter, r *http.Request) {
	resp, err := g.forward(r, http.MethodGet, "/api/export", nil, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	g.logForwarded(r, "export", 1, 1)
	w.Header().Set("Content-Disposition", `attachment; filename="gtd-export.json"`)
	writeRaw(w, r, resp.Body, resp.Status)
}
