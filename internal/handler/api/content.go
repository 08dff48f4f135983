package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"folio-go/internal/cache"
	"folio-go/internal/middleware"
	"folio-go/internal/model"
	"folio-go/internal/store"
)

// UpdateContentRequest is the body for POST /api/content/update. Value
// is a pointer so that a missing field can be told apart from an empty
// string.
type UpdateContentRequest struct {
	ID    int64   `json:"id"`
	Value *string `json:"value"`
}

// ListContent handles GET /api/content. Records come back in insertion
// order so the editor's section grouping is stable.
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r.Context(), cache.KeyContentAll, func() (any, *Meta, error) {
		records, err := h.queries.ListContent(r.Context())
		if err != nil {
			return nil, nil, err
		}
		return records, &Meta{Total: int64(len(records))}, nil
	})
}

// ListContentBySection handles GET /api/content/section/{section}. An
// unknown section yields an empty list, not an error.
func (h *Handler) ListContentBySection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if section == "" {
		WriteBadRequest(w, "Section is required")
		return
	}

	key := fmt.Sprintf(cache.KeyContentSectionFmt, section)
	h.cached(w, r.Context(), key, func() (any, *Meta, error) {
		records, err := h.queries.ListContentBySection(r.Context(), section)
		if err != nil {
			return nil, nil, err
		}
		return records, &Meta{Total: int64(len(records))}, nil
	})
}

// UpdateContent handles POST /api/content/update (admin only). Only the
// value is editable; section, key, and kind are fixed at seed time.
func (h *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	fieldErrors := make(map[string]string)
	if req.ID <= 0 {
		fieldErrors["id"] = "A positive content ID is required"
	}
	if req.Value == nil {
		fieldErrors["value"] = "Value is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	record, err := h.queries.UpdateContentValue(r.Context(), store.UpdateContentValueParams{
		ID:        req.ID,
		Value:     *req.Value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Content record not found")
			return
		}
		WriteInternalError(w, "Failed to update content")
		return
	}

	h.invalidateContentCache(r, record.Section)

	_ = h.events.LogContentEvent(r.Context(), model.EventLevelInfo, "content updated",
		middleware.GetUserIDPtr(r), map[string]any{
			"id":      record.ID,
			"section": record.Section,
			"key":     record.Key,
		})

	WriteSuccess(w, record, nil)
}

// invalidateContentCache drops the cached content lists after a write.
func (h *Handler) invalidateContentCache(r *http.Request, section string) {
	ctx := r.Context()
	_ = h.cache.Delete(ctx, cache.KeyContentAll)
	_ = h.cache.Delete(ctx, fmt.Sprintf(cache.KeyContentSectionFmt, section))
}
