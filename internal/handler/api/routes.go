package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers every API route on r. requireAdmin guards the
// admin-only endpoints; loginLimiter rate limits the login POST.
func (h *Handler) Routes(r chi.Router, requireAdmin, loginLimiter func(http.Handler) http.Handler) {
	r.Get("/status", h.Status)

	r.Get("/content", h.ListContent)
	r.Get("/content/section/{section}", h.ListContentBySection)
	r.Group(func(r chi.Router) {
		r.Use(requireAdmin)
		r.Post("/content/update", h.UpdateContent)
	})

	r.Get("/projects", h.ListProjects)
	r.Get("/projects/category/{category}", h.ListProjectsByCategory)
	r.Get("/projects/{id}", h.GetProject)

	r.Get("/blog", h.ListBlogPosts)
	r.Get("/blog/{slug}", h.GetBlogPostBySlug)

	r.Post("/contact", h.SubmitContact)

	r.Route("/admin", func(r chi.Router) {
		r.With(loginLimiter).Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/check-auth", h.CheckAuth)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/contacts", h.ListContacts)
			r.Get("/events", h.ListEvents)
		})
	})
}
