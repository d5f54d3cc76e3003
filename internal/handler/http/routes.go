package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/booknotes/web"
)

// Init builds the application router. Every route runs through tracing,
// logging and session loading; the second group additionally requires a
// valid session and redirects anonymous visitors to the login page.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.loadSession)

	router.Handle("/static/*", web.Static())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/signup", h.signupForm)
		r.Post("/signup", h.signup)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Post("/contact", h.submitContact)
		r.Get("/privacy", h.stillWorkingOnIt)
		r.Get("/terms", h.stillWorkingOnIt)
	})

	// routes behind a session
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/", h.index)
		r.Get("/add", h.addEntryForm)
		r.Post("/add", h.addEntry)
		r.Get("/edit/{id}", h.editEntryForm)
		r.Post("/edit/{id}", h.editEntry)
		r.Post("/delete/{id}", h.deleteEntry)
		r.Get("/top_reviews", h.topReviews)
		r.Get("/contact", h.contactForm)
		r.Get("/about", h.about)
		r.Get("/profile", h.ownProfile)
		r.Get("/profile/edit", h.editProfileForm)
		r.Post("/profile/edit", h.editProfile)
		r.Get("/profile/{id}", h.profileByID)
		r.Get("/books/{isbn}", h.bookDetail)
		r.Get("/reviews/{id}", h.reviewDetail)
		r.Get("/category/{categoryName}", h.category)
	})

	return router
}
