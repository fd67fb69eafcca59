package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the full route table. Middleware order matters: the trace id
// must exist before the request logger runs, and both must be in place
// before any handler produces output through the gzip writer.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getVersion)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/languages", func(r chi.Router) {
			r.Get("/", h.listLanguages)
			r.Post("/", h.createLanguage)
			r.Put("/{id}", h.updateLanguage)
			r.Delete("/{id}", h.deleteLanguage)
		})

		r.Route("/api/entries", func(r chi.Router) {
			r.Get("/", h.listEntries)
			r.Post("/", h.createEntry)
			r.Get("/random", h.randomEntry)
			r.Get("/{id}", h.getEntry)
			r.Put("/{id}", h.updateEntry)
			r.Delete("/{id}", h.deleteEntry)
		})

		r.Post("/api/enrich", h.enrichWord)

		r.Route("/api/tags", func(r chi.Router) {
			r.Get("/", h.listTagMetadata)
			r.Post("/", h.createTagMetadata)
			r.Get("/decoration/{name}", h.getTagDecoration)
			r.Put("/{id}", h.updateTagMetadata)
			r.Delete("/{id}", h.deleteTagMetadata)
		})

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.updateProfile)

		r.Get("/api/practice/{game}", h.getPracticeDeck)
	})

	return router
}
