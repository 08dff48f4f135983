package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio-go/internal/cache"
	"folio-go/internal/model"
	"folio-go/internal/render"
	"folio-go/internal/util"
)

// BlogPostResponse is a blog post with its markdown rendered to
// sanitized HTML alongside the raw source.
type BlogPostResponse struct {
	model.BlogPost
	HTML string `json:"html"`
}

func toBlogResponse(post model.BlogPost) (BlogPostResponse, error) {
	html, err := render.Markdown(post.Content)
	if err != nil {
		return BlogPostResponse{}, err
	}
	return BlogPostResponse{BlogPost: post, HTML: html}, nil
}

// ListBlogPosts handles GET /api/blog. Posts are ordered newest first.
func (h *Handler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r.Context(), cache.KeyBlogAll, func() (any, *Meta, error) {
		posts, err := h.queries.ListBlogPosts(r.Context())
		if err != nil {
			return nil, nil, err
		}

		responses := make([]BlogPostResponse, 0, len(posts))
		for _, post := range posts {
			resp, err := toBlogResponse(post)
			if err != nil {
				return nil, nil, err
			}
			responses = append(responses, resp)
		}
		return responses, &Meta{Total: int64(len(responses))}, nil
	})
}

// GetBlogPostBySlug handles GET /api/blog/{slug}.
func (h *Handler) GetBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !util.IsValidSlug(slug) {
		WriteBadRequest(w, "Invalid slug")
		return
	}

	post, err := h.queries.GetBlogPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Blog post not found")
			return
		}
		WriteInternalError(w, "Failed to load blog post")
		return
	}

	resp, err := toBlogResponse(post)
	if err != nil {
		WriteInternalError(w, "Failed to render blog post")
		return
	}
	WriteSuccess(w, resp, nil)
}
