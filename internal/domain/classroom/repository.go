package classroom

import "context"

type ClassRepository interface {
	Create(ctx context.Context, c Class) (Class, error)
	GetByID(ctx context.Context, id string) (Class, error)
	List(ctx context.Context) ([]Class, error)
	Update(ctx context.Context, c Class) error
	Delete(ctx context.Context, id string) error
}

// EnrollmentRepository owns the class<->student link used by the
// redemption and check-in gates.
type EnrollmentRepository interface {
	Enroll(ctx context.Context, classID, studentID string) (Enrollment, error)
	Unenroll(ctx context.Context, classID, studentID string) error

	// IsEnrolled reports whether the student belongs to the class
	IsEnrolled(ctx context.Context, studentID, classID string) (bool, error)

	// ListByClass returns enrollments with student name/email joined
	ListByClass(ctx context.Context, classID string) ([]Enrollment, error)

	// ClassIDsByStudent returns all classes the student belongs to
	ClassIDsByStudent(ctx context.Context, studentID string) ([]string, error)
}
