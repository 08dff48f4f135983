// Package api provides the JSON API handlers for the portfolio backend.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"folio-go/internal/cache"
	"folio-go/internal/middleware"
	"folio-go/internal/service"
	"folio-go/internal/store"
	"folio-go/internal/version"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db         *sql.DB
	queries    *store.Queries
	cache      cache.Cache
	sessions   *scs.SessionManager
	events     *service.EventService
	protection *middleware.LoginProtection
	cacheTTL   time.Duration
}

// NewHandler creates an API handler with its dependencies.
func NewHandler(db *sql.DB, c cache.Cache, sm *scs.SessionManager, protection *middleware.LoginProtection, cacheTTL time.Duration) *Handler {
	return &Handler{
		db:         db,
		queries:    store.New(db),
		cache:      c,
		sessions:   sm,
		events:     service.NewEventService(db),
		protection: protection,
		cacheTTL:   cacheTTL,
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries list metadata.
type Meta struct {
	Total int64 `json:"total,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a 200 response in the standard envelope.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message, Details: details},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, nil)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, "unauthorized", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 response with per-field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status handles GET /api/status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{Status: "ok", Version: version.Version}, nil)
}

// cached serves a list endpoint from cache, falling back to fetch and
// repopulating. Cache failures degrade to direct reads rather than
// erroring the request.
func (h *Handler) cached(w http.ResponseWriter, ctx context.Context, key string, fetch func() (any, *Meta, error)) {
	if body, err := h.cache.Get(ctx, key); err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	data, meta, err := fetch()
	if err != nil {
		WriteInternalError(w, "Failed to load data")
		return
	}

	body, err := json.Marshal(Response{Data: data, Meta: meta})
	if err != nil {
		WriteInternalError(w, "Failed to encode response")
		return
	}
	if err := h.cache.Set(ctx, key, body, h.cacheTTL); err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
