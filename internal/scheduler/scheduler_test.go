package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"folio-go/internal/model"
	"folio-go/internal/store"
)

func TestPruneEvents(t *testing.T) {
	db, err := store.NewDB(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	ctx := context.Background()
	queries := store.New(db)
	for _, age := range []time.Duration{90 * 24 * time.Hour, time.Hour} {
		_, err := queries.CreateEvent(ctx, store.CreateEventParams{
			Level:     model.EventLevelInfo,
			Category:  model.EventCategorySystem,
			Message:   "event",
			CreatedAt: time.Now().UTC().Add(-age),
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(db, logger, 7*24*time.Hour)

	if err := s.pruneEvents(); err != nil {
		t.Fatalf("pruneEvents: %v", err)
	}

	events, err := queries.ListRecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events after prune, want 1", len(events))
	}
}

func TestStartStop(t *testing.T) {
	db, err := store.NewDB(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(db, logger, 24*time.Hour)

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}
