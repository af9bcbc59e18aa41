package report

import "context"

type ReportRepository interface {
	Create(ctx context.Context, rep CheatingReport) (CheatingReport, error)
	GetByID(ctx context.Context, id string) (CheatingReport, error)

	// ListByTeacher returns reports raised against the teacher's slots,
	// optionally filtered by review status, newest first
	ListByTeacher(ctx context.Context, teacherID, status string) ([]CheatingReport, error)

	// UpdateReview stamps the reviewer, note and status
	UpdateReview(ctx context.Context, rep CheatingReport) (CheatingReport, error)
}
