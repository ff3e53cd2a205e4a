package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signUp)
		r.Post("/auth/signin", h.signIn)
	})

	// routes guarded by the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getMe)
		r.Patch("/users", h.editUser)

		r.Get("/bookmarks", h.getBookmarks)
		r.Post("/bookmarks", h.createBookmark)
		r.Get("/bookmarks/{id}", h.getBookmarkByID)
		r.Patch("/bookmarks/{id}", h.editBookmark)
		r.Delete("/bookmarks/{id}", h.deleteBookmark)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
