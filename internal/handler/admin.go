// Package handler serves the embedded admin editor page.
package handler

import (
	"net/http"

	"folio-go/web"
)

// AdminPage serves the single-page admin editor. Authentication happens
// in the page itself against the JSON API, so the HTML is public.
func AdminPage(w http.ResponseWriter, r *http.Request) {
	data, err := web.Static.ReadFile("static/admin.html")
	if err != nil {
		http.Error(w, "admin page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}
