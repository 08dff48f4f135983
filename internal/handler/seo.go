package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"folio-go/internal/seo"
	"folio-go/internal/store"
)

// SEO serves robots.txt and sitemap.xml for the public site.
type SEO struct {
	queries *store.Queries
	siteURL string

	// disallowAll blocks crawlers entirely; set outside production-like
	// deployments so staging copies never get indexed.
	disallowAll bool
}

// NewSEO creates the crawler-facing handler.
func NewSEO(db *sql.DB, siteURL string, disallowAll bool) *SEO {
	return &SEO{
		queries:     store.New(db),
		siteURL:     siteURL,
		disallowAll: disallowAll,
	}
}

// Robots serves robots.txt.
func (h *SEO) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.GenerateRobots(seo.RobotsConfig{
		SiteURL:     h.siteURL,
		DisallowAll: h.disallowAll,
	})))
}

// Sitemap serves sitemap.xml built from the current blog posts.
func (h *SEO) Sitemap(w http.ResponseWriter, r *http.Request) {
	builder := seo.NewSitemapBuilder(h.siteURL)
	builder.AddHomepage()
	builder.AddSection("/projects")
	builder.AddSection("/blog")

	posts, err := h.queries.ListBlogPosts(r.Context())
	if err != nil {
		slog.Error("sitemap generation failed", "error", err)
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	for _, p := range posts {
		builder.AddBlogPost(p.Slug, p.PublishedDate)
	}

	out, err := builder.Build()
	if err != nil {
		slog.Error("sitemap generation failed", "error", err)
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}
