package report

import "time"

// Report types
const (
	TypeSpoofing         = "SPOOFING_DETECTED"
	TypeLocationMismatch = "LOCATION_MISMATCH"
	TypeFaceMismatch     = "FACE_MISMATCH"
	TypeMultipleDevices  = "MULTIPLE_DEVICES"
)

// Review statuses
const (
	StatusPending   = "PENDING"
	StatusReviewed  = "REVIEWED"
	StatusConfirmed = "CONFIRMED"
	StatusDismissed = "DISMISSED"
)

// CheatingReport flags a suspicious check-in attempt for lecturer
// review. Creation never blocks on review; reports start PENDING.
type CheatingReport struct {
	ID          string
	SessionID   string
	SlotID      string
	StudentID   string
	Type        string
	Details     string
	EvidenceURL *string
	Status      string
	ReviewedBy  *string
	ReviewNote  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	StudentName *string
	SubjectName *string
	ClassName   *string
}
