package classroom

import "time"

// Class is a cohort of students taking subjects together.
type Class struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Enrollment links a student to a class. Unique on (class, student).
type Enrollment struct {
	ID        string
	ClassID   string
	StudentID string
	CreatedAt time.Time

	// DTO / Join
	StudentName  *string
	StudentEmail *string
}
