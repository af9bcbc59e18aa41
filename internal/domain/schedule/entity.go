package schedule

import "time"

// Slot status lifecycle. Slots are SCHEDULED when created and flipped to
// COMPLETED by the background sweeper once their end time has passed.
const (
	SlotStatusScheduled  = "SCHEDULED"
	SlotStatusInProgress = "IN_PROGRESS"
	SlotStatusCompleted  = "COMPLETED"
	SlotStatusCancelled  = "CANCELLED"
)

// Slot is one concrete scheduled class occurrence: a subject taught to a
// class in a room by a teacher on a given date and time range.
type Slot struct {
	ID         string
	SemesterID *string
	SubjectID  string
	ClassID    string
	RoomID     string
	TeacherID  string
	Date       time.Time
	StartTime  string // "HH:MM", local campus time
	EndTime    string // "HH:MM"
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	SubjectName *string
	SubjectCode *string
	ClassName   *string
	RoomName    *string
	TeacherName *string
}
