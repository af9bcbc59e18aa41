package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/domain/schedule"
	"github.com/campuslab/attendance-backend-go/internal/domain/session"
	"github.com/campuslab/attendance-backend-go/internal/pkg/clock"
)

// sessions stay queryable for an hour after their window closes so
// late slot-status requests can still resolve them
const sessionRetention = 1 * time.Hour

type AttendanceJobs struct {
	sessionRepo session.SessionRepository
	slotRepo    schedule.SlotRepository
	clk         clock.Clock
}

func NewAttendanceJobs(
	sessionRepo session.SessionRepository,
	slotRepo schedule.SlotRepository,
	clk clock.Clock,
) *AttendanceJobs {
	return &AttendanceJobs{
		sessionRepo: sessionRepo,
		slotRepo:    slotRepo,
		clk:         clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_sessions", 10*time.Minute, j.PurgeExpiredSessions)
	scheduler.AddJob("complete_finished_slots", 15*time.Minute, j.CompleteFinishedSlots)
}

// PurgeExpiredSessions removes attendance sessions whose validity
// window closed more than sessionRetention ago.
func (j *AttendanceJobs) PurgeExpiredSessions(ctx context.Context) error {
	cutoff := j.clk.Now().Add(-sessionRetention)

	deleted, err := j.sessionRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge expired sessions: %w", err)
	}

	if deleted > 0 {
		slog.Info("Cron: Purged expired attendance sessions", "count", deleted)
	}
	return nil
}

// CompleteFinishedSlots flips SCHEDULED and IN_PROGRESS slots to
// COMPLETED once their end time has passed.
func (j *AttendanceJobs) CompleteFinishedSlots(ctx context.Context) error {
	updated, err := j.slotRepo.MarkCompletedBefore(ctx, j.clk.Now())
	if err != nil {
		return fmt.Errorf("failed to complete finished slots: %w", err)
	}

	if updated > 0 {
		slog.Info("Cron: Marked finished slots completed", "count", updated)
	}
	return nil
}
