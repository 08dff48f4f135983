package handler

import (
	"context"
	"database/sql"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folio-go/internal/seo"
	"folio-go/internal/store"
)

func newSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.NewDB(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	if err := store.Seed(context.Background(), db, store.AdminCredentials{
		Username: "admin",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("seeding database: %v", err)
	}
	return db
}

func TestRobots(t *testing.T) {
	h := NewSEO(newSeededDB(t), "https://folio.example", false)

	rec := httptest.NewRecorder()
	h.Robots(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Disallow: /admin") {
		t.Errorf("admin not disallowed:\n%s", body)
	}
	if !strings.Contains(body, "Sitemap: https://folio.example/sitemap.xml") {
		t.Errorf("sitemap reference missing:\n%s", body)
	}
}

func TestRobots_DisallowAll(t *testing.T) {
	h := NewSEO(newSeededDB(t), "https://folio.example", true)

	rec := httptest.NewRecorder()
	h.Robots(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	if !strings.Contains(rec.Body.String(), "Disallow: /\n") {
		t.Errorf("staging robots must block everything:\n%s", rec.Body.String())
	}
}

func TestSitemap(t *testing.T) {
	db := newSeededDB(t)
	h := NewSEO(db, "https://folio.example", false)

	rec := httptest.NewRecorder()
	h.Sitemap(rec, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}

	var parsed seo.Sitemap
	if err := xml.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("sitemap does not parse: %v", err)
	}

	posts, err := store.New(db).ListBlogPosts(context.Background())
	if err != nil {
		t.Fatalf("ListBlogPosts: %v", err)
	}
	// Homepage, /projects, /blog, plus one entry per seeded post.
	if want := 3 + len(posts); len(parsed.URLs) != want {
		t.Fatalf("got %d urls, want %d", len(parsed.URLs), want)
	}
	for _, p := range posts {
		found := false
		for _, u := range parsed.URLs {
			if u.Loc == "https://folio.example/blog/"+p.Slug {
				found = true
			}
		}
		if !found {
			t.Errorf("post %q missing from sitemap", p.Slug)
		}
	}
}
