// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"folio-go/internal/service"
)

// Scheduler prunes the event log on a cron cadence so an unattended
// instance does not accumulate events without bound.
type Scheduler struct {
	events    *service.EventService
	cron      *cron.Cron
	logger    *slog.Logger
	retention time.Duration
}

// New creates a scheduler. Retention controls how old an event may get
// before the prune job removes it.
func New(db *sql.DB, logger *slog.Logger, retention time.Duration) *Scheduler {
	return &Scheduler{
		events:    service.NewEventService(db),
		cron:      cron.New(),
		logger:    logger,
		retention: retention,
	}
}

// Start registers the hourly prune job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		if err := s.pruneEvents(); err != nil {
			s.logger.Error("failed to prune events", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()), "event_retention", s.retention)
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) pruneEvents() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.events.PruneOldEvents(ctx, s.retention)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("pruned old events", "deleted", deleted)
	}
	return nil
}
