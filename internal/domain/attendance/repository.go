package attendance

import "context"

// RecordRepository owns attendance-record rows. All writes go through
// Upsert so the (session, student) uniqueness invariant holds under
// concurrent retries.
type RecordRepository interface {
	// Upsert atomically inserts or overwrites the record keyed by
	// (SessionID, StudentID). Last writer wins; rows are never
	// duplicated
	Upsert(ctx context.Context, rec Record) (Record, error)

	// HasPresent reports whether a PRESENT record exists for the pair
	HasPresent(ctx context.Context, sessionID, studentID string) (bool, error)

	// GetBySessionAndStudent returns the record for the pair, or
	// ErrRecordNotFound
	GetBySessionAndStudent(ctx context.Context, sessionID, studentID string) (Record, error)

	// GetByStudentAndSlot returns the student's record for a slot, if any
	GetByStudentAndSlot(ctx context.Context, studentID, slotID string) (*Record, error)

	// ListByStudent returns all records for a student with slot
	// reference names joined, newest first
	ListByStudent(ctx context.Context, studentID string) ([]Record, error)
}
