package face

import "time"

// DescriptorLength is the dimensionality of a single face embedding.
const DescriptorLength = 128

// MinDescriptors is the number of samples required to register.
const MinDescriptors = 3

// StatusActive marks a registration usable for check-in verification.
const StatusActive = "ACTIVE"

// FaceData stores a student's registered face embeddings. One row per
// student; re-registration replaces the descriptor set.
type FaceData struct {
	ID          string
	StudentID   string
	Descriptors [][]float64
	SampleCount int
	Status      string
	SnapshotURL *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
