// Package service holds business logic shared between handlers and the
// scheduler.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"folio-go/internal/model"
	"folio-go/internal/store"
)

// EventService writes audit events for the admin activity feed.
type EventService struct {
	queries *store.Queries
}

// NewEventService creates an EventService on top of the given database.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{queries: store.New(db)}
}

// LogEvent records a single event. Metadata is marshaled to JSON; a nil
// map becomes an empty object.
func (s *EventService) LogEvent(ctx context.Context, level, category, message string, userID *int64, metadata map[string]any) error {
	metadataJSON := "{}"
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(b)
		}
	}

	_, err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:     level,
		Category:  category,
		Message:   message,
		UserID:    userID,
		Metadata:  metadataJSON,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to write event", "category", category, "error", err)
	}
	return err
}

// LogAuthEvent records an authentication event (login, logout, lockout).
func (s *EventService) LogAuthEvent(ctx context.Context, level, message string, userID *int64, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryAuth, message, userID, metadata)
}

// LogContentEvent records a content mutation.
func (s *EventService) LogContentEvent(ctx context.Context, level, message string, userID *int64, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryContent, message, userID, metadata)
}

// LogContactEvent records a contact form submission.
func (s *EventService) LogContactEvent(ctx context.Context, level, message string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryContact, message, nil, metadata)
}

// RecentEvents returns up to limit events, newest first.
func (s *EventService) RecentEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	return s.queries.ListRecentEvents(ctx, limit)
}

// PruneOldEvents removes events older than retention and reports how
// many were deleted.
func (s *EventService) PruneOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	return s.queries.DeleteEventsBefore(ctx, cutoff)
}
