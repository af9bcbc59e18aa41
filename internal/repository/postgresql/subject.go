package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/master/subject"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type subjectRepository struct {
	db *database.DB
}

func NewSubjectRepository(db *database.DB) subject.SubjectRepository {
	return &subjectRepository{db: db}
}

// Create implements subject.SubjectRepository.
func (r *subjectRepository) Create(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subjects (code, name, credits)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.Code, s.Name, s.Credits).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return subject.Subject{}, subject.ErrSubjectCodeExists
		}
		return subject.Subject{}, fmt.Errorf("failed to create subject: %w", err)
	}

	return s, nil
}

// GetByID implements subject.SubjectRepository.
func (r *subjectRepository) GetByID(ctx context.Context, id string) (subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, credits, created_at, updated_at
		FROM subjects
		WHERE id = $1
	`

	var s subject.Subject
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Code, &s.Name, &s.Credits, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return subject.Subject{}, subject.ErrSubjectNotFound
		}
		return subject.Subject{}, fmt.Errorf("failed to get subject: %w", err)
	}

	return s, nil
}

// List implements subject.SubjectRepository.
func (r *subjectRepository) List(ctx context.Context) ([]subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, credits, created_at, updated_at
		FROM subjects
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []subject.Subject
	for rows.Next() {
		var s subject.Subject
		if err := rows.Scan(
			&s.ID, &s.Code, &s.Name, &s.Credits, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}

	return subjects, rows.Err()
}

// Update implements subject.SubjectRepository.
func (r *subjectRepository) Update(ctx context.Context, s subject.Subject) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subjects
		SET code = $2, name = $3, credits = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Code, s.Name, s.Credits)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return subject.ErrSubjectCodeExists
		}
		return fmt.Errorf("failed to update subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return subject.ErrSubjectNotFound
	}

	return nil
}

// Delete implements subject.SubjectRepository.
func (r *subjectRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return subject.ErrSubjectNotFound
	}

	return nil
}
