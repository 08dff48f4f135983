package api

import (
	"net/http"
	"strconv"
	"time"
)

// defaultEventLimit bounds GET /api/admin/events.
const defaultEventLimit = 100

// EventResponse is an event log entry as exposed to the admin UI.
type EventResponse struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	UserID    *int64    `json:"userId,omitempty"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListContacts handles GET /api/admin/contacts (admin only), newest
// first.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.queries.ListContacts(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list contacts")
		return
	}
	WriteSuccess(w, contacts, &Meta{Total: int64(len(contacts))})
}

// ListEvents handles GET /api/admin/events (admin only). An optional
// limit query parameter caps the result, defaulting to 100.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultEventLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			WriteBadRequest(w, "Invalid limit")
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	events, err := h.events.RecentEvents(r.Context(), limit)
	if err != nil {
		WriteInternalError(w, "Failed to list events")
		return
	}

	responses := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp := EventResponse{
			ID:        e.ID,
			Level:     e.Level,
			Category:  e.Category,
			Message:   e.Message,
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
		}
		if e.UserID.Valid {
			id := e.UserID.Int64
			resp.UserID = &id
		}
		responses = append(responses, resp)
	}
	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}
