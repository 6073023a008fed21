package gateway

import (
	"net/http"

	"github.com/MKhiriev/go-gtd/internal/handler/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func (g *Gateway) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		chimw.Recoverer,
		middleware.WithTraceID(g.logger),
		middleware.WithLogging,
		g.metrics.Middleware,
		middleware.WithGZip,
	)

	router.Get("/health", g.health)
	router.Handle("/metrics", g.metrics.Handler())
	router.Get("/api/features", g.getFeatures)
	router.Get("/api/version", g.passthrough("version", "/api/version"))

	router.Post("/api/auth/register", g.register)
	router.Post("/api/auth/login", g.login)
	router.Post("/api/auth/logout", g.logout)

	router.Group(func(r chi.Router) {
		r.Use(g.requireSession)

		// not rate limited
		r.Get("/api/events", g.streamEvents)

		r.Group(func(r chi.Router) {
			r.Use(g.rateLimit)
			g.resourceRoutes(r)
		})
	})

	router.NotFound(middleware.NotFound)
	router.MethodNotAllowed(middleware.MethodNotAllowed(router))

	return router
}

func (g *Gateway) resourceRoutes(r chi.Router) {
	r.Get("/api/users/me", g.passthrough("users", "/api/users/me"))
	r.Put("/api/users/me", g.passthrough("users", "/api/users/me"))

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", g.list(projects))
		r.Post("/", g.create(projects))
		r.Get("/weekly", g.listAt(projects, "/api/projects/weekly"))
		r.Get("/{id}", g.get(projects))
		r.Put("/{id}", g.update(projects))
		r.Delete("/{id}", g.remove(projects))
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", g.list(tasks))
		r.Post("/", g.create(tasks))
		r.Get("/today", g.listAt(tasks, "/api/tasks/today"))
		r.Get("/week", g.listAt(tasks, "/api/tasks/week"))
		r.Get("/{id}", g.get(tasks))
		r.Put("/{id}", g.update(tasks))
		r.Delete("/{id}", g.remove(tasks))
	})

	r.Route("/api/fields", func(r chi.Router) {
		r.Get("/", g.list(fields))
		r.Post("/", g.create(fields))
		r.Get("/{id}", g.get(fields))
		r.Put("/{id}", g.update(fields))
		r.Delete("/{id}", g.remove(fields))
	})

	r.Get("/api/dashboard/stats", g.passthrough("dashboard", "/api/dashboard/stats"))
	r.Get("/api/search/tasks", g.listAt(tasks, "/api/search/tasks"))
	r.Get("/api/search/projects", g.listAt(projects, "/api/search/projects"))

	r.Post("/api/quick-add/parse", g.passthrough("quick-add", "/api/quick-add/parse"))
	r.Post("/api/quick-add", g.createAt(tasks, "/api/quick-add"))

	r.Group(func(r chi.Router) {
		r.Use(g.requireFeature(g.features.ExportImport))
		r.Get("/api/export", g.export)
		r.Post("/api/import", g.passthrough("import", "/api/import"))
	})
}

func (g *Gateway) requireFeature(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				writeError(w, r, ErrFeatureDisabled)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
