package attendance

import "time"

// Record statuses. LATE is part of the stored enum but the decision
// engine never assigns it; it is reachable only through admin correction.
const (
	StatusPresent         = "PRESENT"
	StatusAbsent          = "ABSENT"
	StatusLate            = "LATE"
	StatusInvalidLocation = "INVALID_LOCATION"
)

// Record is one student's outcome for one attendance session.
// Unique on (SessionID, StudentID); resubmission overwrites.
type Record struct {
	ID                string
	SessionID         string
	SlotID            string
	StudentID         string
	Status            string
	FaceImageURL      *string
	FaceConfidence    float64
	CheckinTime       time.Time
	LocationLat       *float64
	LocationLng       *float64
	LivenessCompleted *string // comma-joined challenge names
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO / Join
	SubjectName *string
	SubjectCode *string
	ClassName   *string
	RoomName    *string
}
