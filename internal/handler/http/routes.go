package http

import (
	"time"

	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. requestTimeout bounds API requests; zero
// disables the limit.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withRecover, h.withLogging, h.withCORS)

	router.Get(store.PublicObjectPrefix+"{bucket}/*", h.downloadObject)

	router.Route("/api", func(api chi.Router) {
		api.Use(withGZip)
		if requestTimeout > 0 {
			api.Use(middleware.Timeout(requestTimeout))
		}

		// routes without authorization
		api.Get("/version", h.getServerVersion)
		api.Post("/auth/login", h.login)
		api.Get("/characters", h.listCharacters)

		// admin routes
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)
			r.Get("/auth/session", h.session)

			r.Put("/characters", h.saveCharacter)
			r.Delete("/characters/{id}", h.deleteCharacter)

			r.Get("/storage/objects", h.listObjects)
			r.Post("/storage/objects/*", h.uploadObject)
			r.Delete("/storage/objects", h.removeObjects)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
