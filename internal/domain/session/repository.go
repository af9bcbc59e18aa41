package session

import (
	"context"
	"time"
)

// SessionRepository owns attendance-session rows. Nothing outside the
// attendance subsystem writes them.
type SessionRepository interface {
	// Upsert atomically creates or rotates the session for
	// (slotID, teacherID): an existing row gets the new digest and
	// window, invalidating the previous code in the same statement
	Upsert(ctx context.Context, s Session) (Session, error)

	GetByID(ctx context.Context, id string) (Session, error)

	// ListActive returns all sessions whose window contains now.
	// The result is small by construction: sessions expire minutes
	// after they are opened
	ListActive(ctx context.Context, now time.Time) ([]Session, error)

	// GetActiveBySlot returns the live session for a slot, if any
	GetActiveBySlot(ctx context.Context, slotID string, now time.Time) (*Session, error)

	// DeleteExpiredBefore removes sessions whose window closed before
	// the cutoff, returning the number removed
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
