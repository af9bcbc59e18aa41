package report

import "context"

// ReportService exposes cheating reports to the lecturer who owns the
// affected slots.
type ReportService interface {
	MyReports(ctx context.Context, status string) ([]ReportResponse, error)
	Review(ctx context.Context, reportID string, req ReviewRequest) (ReportResponse, error)
}
