package schedule

import "context"

// ScheduleService defines business logic for schedule slots
type ScheduleService interface {
	// CreateSlot registers a new scheduled occurrence (admin)
	CreateSlot(ctx context.Context, req CreateSlotRequest) (SlotResponse, error)

	// GetSlot retrieves a single slot with reference names joined
	GetSlot(ctx context.Context, id string) (SlotResponse, error)

	// MyTeachingSlots lists all slots taught by the authenticated lecturer
	MyTeachingSlots(ctx context.Context) ([]SlotResponse, error)

	// MyUpcomingSlots lists upcoming slots for the authenticated student,
	// derived from class enrollment
	MyUpcomingSlots(ctx context.Context) ([]SlotResponse, error)

	// DeleteSlot removes a slot (admin)
	DeleteSlot(ctx context.Context, id string) error
}
