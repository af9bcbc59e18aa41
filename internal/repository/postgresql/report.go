package postgresql

import (
	"context"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/report"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// Create implements report.ReportRepository.
func (r *reportRepository) Create(ctx context.Context, rep report.CheatingReport) (report.CheatingReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cheating_reports (session_id, slot_id, student_id, type, details, evidence_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rep.SessionID, rep.SlotID, rep.StudentID, rep.Type, rep.Details, rep.EvidenceURL, rep.Status,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)

	if err != nil {
		return report.CheatingReport{}, fmt.Errorf("failed to create cheating report: %w", err)
	}

	return rep, nil
}

// GetByID implements report.ReportRepository.
func (r *reportRepository) GetByID(ctx context.Context, id string) (report.CheatingReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, session_id, slot_id, student_id, type, details, evidence_url,
			   status, reviewed_by, review_note, reviewed_at, created_at, updated_at
		FROM cheating_reports
		WHERE id = $1
	`

	var rep report.CheatingReport
	err := q.QueryRow(ctx, query, id).Scan(
		&rep.ID, &rep.SessionID, &rep.SlotID, &rep.StudentID, &rep.Type, &rep.Details, &rep.EvidenceURL,
		&rep.Status, &rep.ReviewedBy, &rep.ReviewNote, &rep.ReviewedAt, &rep.CreatedAt, &rep.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return report.CheatingReport{}, report.ErrReportNotFound
		}
		return report.CheatingReport{}, fmt.Errorf("failed to get cheating report: %w", err)
	}

	return rep, nil
}

// ListByTeacher implements report.ReportRepository.
func (r *reportRepository) ListByTeacher(ctx context.Context, teacherID, status string) ([]report.CheatingReport, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT cr.id, cr.session_id, cr.slot_id, cr.student_id, cr.type, cr.details, cr.evidence_url,
			   cr.status, cr.reviewed_by, cr.review_note, cr.reviewed_at, cr.created_at, cr.updated_at,
			   u.full_name, sub.name, c.name
		FROM cheating_reports cr
		JOIN schedule_slots s ON s.id = cr.slot_id
		JOIN users u ON u.id = cr.student_id
		JOIN subjects sub ON sub.id = s.subject_id
		JOIN classes c ON c.id = s.class_id
		WHERE s.teacher_id = $1
		  AND ($2 = '' OR cr.status = $2)
		ORDER BY cr.created_at DESC
	`, teacherID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list cheating reports: %w", err)
	}
	defer rows.Close()

	var reports []report.CheatingReport
	for rows.Next() {
		var rep report.CheatingReport
		if err := rows.Scan(
			&rep.ID, &rep.SessionID, &rep.SlotID, &rep.StudentID, &rep.Type, &rep.Details, &rep.EvidenceURL,
			&rep.Status, &rep.ReviewedBy, &rep.ReviewNote, &rep.ReviewedAt, &rep.CreatedAt, &rep.UpdatedAt,
			&rep.StudentName, &rep.SubjectName, &rep.ClassName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cheating report: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

// UpdateReview implements report.ReportRepository.
func (r *reportRepository) UpdateReview(ctx context.Context, rep report.CheatingReport) (report.CheatingReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cheating_reports
		SET status = $2, reviewed_by = $3, review_note = $4, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING reviewed_at, updated_at
	`

	err := q.QueryRow(ctx, query, rep.ID, rep.Status, rep.ReviewedBy, rep.ReviewNote).
		Scan(&rep.ReviewedAt, &rep.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return report.CheatingReport{}, report.ErrReportNotFound
		}
		return report.CheatingReport{}, fmt.Errorf("failed to update cheating report: %w", err)
	}

	return rep, nil
}
