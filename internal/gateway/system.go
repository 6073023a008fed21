package gateway

import (
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
)

func (g *Gateway) getFeatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.Features{
		Auth:               g.features.Auth,
		Realtime:           g.features.Realtime,
		EmailNotifications: g.features.EmailNotifications,
		ExportImport:       g.features.ExportImport,
	}, http.StatusOK)
}

// health reports the gateway as healthy only while the backend answers.
func (g *Gateway) health(w http.ResponseWriter, r *http.Request) {
	if err := g.backend.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("backend health check failed")
		writeJSON(w, r, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}
