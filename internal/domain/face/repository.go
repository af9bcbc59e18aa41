package face

import "context"

type FaceRepository interface {
	// Upsert replaces the student's descriptor set
	Upsert(ctx context.Context, data FaceData) (FaceData, error)

	// GetByStudent returns the student's face data or ErrFaceNotRegistered
	GetByStudent(ctx context.Context, studentID string) (FaceData, error)

	// Exists reports whether the student has registered face data
	Exists(ctx context.Context, studentID string) (bool, error)

	Delete(ctx context.Context, studentID string) error
}
