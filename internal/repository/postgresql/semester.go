package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/master/semester"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type semesterRepository struct {
	db *database.DB
}

func NewSemesterRepository(db *database.DB) semester.SemesterRepository {
	return &semesterRepository{db: db}
}

// Create implements semester.SemesterRepository.
func (r *semesterRepository) Create(ctx context.Context, s semester.Semester) (semester.Semester, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO semesters (name, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.Name, s.StartDate, s.EndDate, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return semester.Semester{}, semester.ErrSemesterExists
		}
		return semester.Semester{}, fmt.Errorf("failed to create semester: %w", err)
	}

	return s, nil
}

// GetByID implements semester.SemesterRepository.
func (r *semesterRepository) GetByID(ctx context.Context, id string) (semester.Semester, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, is_active, created_at, updated_at
		FROM semesters
		WHERE id = $1
	`

	var s semester.Semester
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return semester.Semester{}, semester.ErrSemesterNotFound
		}
		return semester.Semester{}, fmt.Errorf("failed to get semester: %w", err)
	}

	return s, nil
}

// List implements semester.SemesterRepository.
func (r *semesterRepository) List(ctx context.Context) ([]semester.Semester, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, is_active, created_at, updated_at
		FROM semesters
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list semesters: %w", err)
	}
	defer rows.Close()

	var semesters []semester.Semester
	for rows.Next() {
		var s semester.Semester
		if err := rows.Scan(
			&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan semester: %w", err)
		}
		semesters = append(semesters, s)
	}

	return semesters, rows.Err()
}

// Update implements semester.SemesterRepository.
func (r *semesterRepository) Update(ctx context.Context, s semester.Semester) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE semesters
		SET name = $2, start_date = $3, end_date = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Name, s.StartDate, s.EndDate, s.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update semester: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return semester.ErrSemesterNotFound
	}

	return nil
}

// Delete implements semester.SemesterRepository.
func (r *semesterRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM semesters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete semester: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return semester.ErrSemesterNotFound
	}

	return nil
}
