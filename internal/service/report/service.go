package report

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/domain/report"
	"github.com/campuslab/attendance-backend-go/internal/domain/schedule"
	"github.com/go-chi/jwtauth/v5"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	slotRepo   schedule.SlotRepository
}

func NewReportService(reportRepo report.ReportRepository, slotRepo schedule.SlotRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		slotRepo:   slotRepo,
	}
}

// MyReports implements report.ReportService.
func (s *ReportServiceImpl) MyReports(ctx context.Context, status string) ([]report.ReportResponse, error) {
	teacherID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	reports, err := s.reportRepo.ListByTeacher(ctx, teacherID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]report.ReportResponse, 0, len(reports))
	for _, rep := range reports {
		responses = append(responses, toResponse(rep))
	}

	return responses, nil
}

// Review implements report.ReportService. Only the lecturer who owns
// the affected slot may change the review status.
func (s *ReportServiceImpl) Review(ctx context.Context, reportID string, req report.ReviewRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	teacherID, err := userIDFromContext(ctx)
	if err != nil {
		return report.ReportResponse{}, err
	}

	rep, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return report.ReportResponse{}, err
	}

	slot, err := s.slotRepo.GetByID(ctx, rep.SlotID)
	if err != nil {
		return report.ReportResponse{}, err
	}
	if slot.TeacherID != teacherID {
		// Hide reports the caller does not own
		return report.ReportResponse{}, report.ErrReportNotFound
	}

	rep.Status = req.Status
	rep.ReviewedBy = &teacherID
	if req.Note != "" {
		rep.ReviewNote = &req.Note
	}

	updated, err := s.reportRepo.UpdateReview(ctx, rep)
	if err != nil {
		return report.ReportResponse{}, err
	}

	return toResponse(updated), nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func toResponse(rep report.CheatingReport) report.ReportResponse {
	return report.ReportResponse{
		ID:          rep.ID,
		SessionID:   rep.SessionID,
		SlotID:      rep.SlotID,
		StudentID:   rep.StudentID,
		StudentName: rep.StudentName,
		Type:        rep.Type,
		Details:     rep.Details,
		Status:      rep.Status,
		ReviewNote:  rep.ReviewNote,
		CreatedAt:   rep.CreatedAt.Format(time.RFC3339),
	}
}
