package http

import (
	"github.com/MKhiriev/go-gtd/internal/handler/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		chimw.Recoverer,
		middleware.WithTraceID(h.logger),
		middleware.WithLogging,
		h.metrics.Middleware,
		middleware.WithGZip,
	)
	if h.requestTimeout > 0 {
		router.Use(chimw.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Handle("/metrics", h.metrics.Handler())
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.getMe)
		r.Put("/api/users/me", h.updateMe)

		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.createProject)
			r.Get("/weekly", h.weeklyProjects)
			r.Get("/{id}", h.getProject)
			r.Put("/{id}", h.updateProject)
			r.Delete("/{id}", h.deleteProject)
		})

		r.Route("/api/tasks", func(r chi.Router) {
			r.Get("/", h.listTasks)
			r.Post("/", h.createTask)
			r.Get("/today", h.todayTasks)
			r.Get("/week", h.weekTasks)
			r.Get("/{id}", h.getTask)
			r.Put("/{id}", h.updateTask)
			r.Delete("/{id}", h.deleteTask)
		})

		r.Route("/api/fields", func(r chi.Router) {
			r.Get("/", h.listFields)
			r.Post("/", h.createField)
			r.Get("/{id}", h.getField)
			r.Put("/{id}", h.updateField)
			r.Delete("/{id}", h.deleteField)
		})

		r.Get("/api/dashboard/stats", h.dashboardStats)
		r.Get("/api/search/tasks", h.searchTasks)
		r.Get("/api/search/projects", h.searchProjects)

		r.Post("/api/quick-add/parse", h.parseQuickAdd)
		r.Post("/api/quick-add", h.quickAdd)

		r.Group(func(r chi.Router) {
			r.Use(requireFeature(h.features.ExportImport))
			r.Get("/api/export", h.exportData)
			r.Post("/api/import", h.importData)
		})
	})

	router.NotFound(middleware.NotFound)
	router.MethodNotAllowed(middleware.MethodNotAllowed(router))

	return router
}
