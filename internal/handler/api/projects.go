package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio-go/internal/cache"
)

// ListProjects handles GET /api/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r.Context(), cache.KeyProjectsAll, func() (any, *Meta, error) {
		projects, err := h.queries.ListProjects(r.Context())
		if err != nil {
			return nil, nil, err
		}
		return projects, &Meta{Total: int64(len(projects))}, nil
	})
}

// ListProjectsByCategory handles GET /api/projects/category/{category}.
// The category "all" matches every project. Results are not cached; the
// category space is unbounded user input.
func (h *Handler) ListProjectsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		WriteBadRequest(w, "Category is required")
		return
	}

	projects, err := h.queries.ListProjectsByCategory(r.Context(), category)
	if err != nil {
		WriteInternalError(w, "Failed to list projects")
		return
	}
	WriteSuccess(w, projects, &Meta{Total: int64(len(projects))})
}

// GetProject handles GET /api/projects/{id}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid project ID")
		return
	}

	project, err := h.queries.GetProjectByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Project not found")
			return
		}
		WriteInternalError(w, "Failed to load project")
		return
	}
	WriteSuccess(w, project, nil)
}
