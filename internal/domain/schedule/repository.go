package schedule

import (
	"context"
	"time"
)

type SlotRepository interface {
	Create(ctx context.Context, s Slot) (Slot, error)

	// GetByID retrieves a slot with subject/class/room/teacher names joined
	GetByID(ctx context.Context, id string) (Slot, error)

	// ListByTeacher returns all slots taught by a lecturer, ordered by
	// date then start time
	ListByTeacher(ctx context.Context, teacherID string) ([]Slot, error)

	// ListUpcomingByClasses returns slots for the given classes from the
	// given date onward
	ListUpcomingByClasses(ctx context.Context, classIDs []string, from time.Time) ([]Slot, error)

	Update(ctx context.Context, s Slot) error
	Delete(ctx context.Context, id string) error

	// MarkCompletedBefore flips SCHEDULED slots whose date is before the
	// cutoff to COMPLETED, returning the number updated
	MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
