package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/classroom"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type classRepository struct {
	db *database.DB
}

func NewClassRepository(db *database.DB) classroom.ClassRepository {
	return &classRepository{db: db}
}

// Create implements classroom.ClassRepository.
func (r *classRepository) Create(ctx context.Context, c classroom.Class) (classroom.Class, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO classes (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.Name).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return classroom.Class{}, classroom.ErrClassExists
		}
		return classroom.Class{}, fmt.Errorf("failed to create class: %w", err)
	}

	return c, nil
}

// GetByID implements classroom.ClassRepository.
func (r *classRepository) GetByID(ctx context.Context, id string) (classroom.Class, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM classes
		WHERE id = $1
	`

	var c classroom.Class
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return classroom.Class{}, classroom.ErrClassNotFound
		}
		return classroom.Class{}, fmt.Errorf("failed to get class: %w", err)
	}

	return c, nil
}

// List implements classroom.ClassRepository.
func (r *classRepository) List(ctx context.Context) ([]classroom.Class, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM classes
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	defer rows.Close()

	var classes []classroom.Class
	for rows.Next() {
		var c classroom.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, c)
	}

	return classes, rows.Err()
}

// Update implements classroom.ClassRepository.
func (r *classRepository) Update(ctx context.Context, c classroom.Class) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE classes
		SET name = $2, updated_at = NOW()
		WHERE id = $1
	`, c.ID, c.Name)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classroom.ErrClassNotFound
	}

	return nil
}

// Delete implements classroom.ClassRepository.
func (r *classRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classroom.ErrClassNotFound
	}

	return nil
}

type enrollmentRepository struct {
	db *database.DB
}

func NewEnrollmentRepository(db *database.DB) classroom.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Enroll implements classroom.EnrollmentRepository.
func (r *enrollmentRepository) Enroll(ctx context.Context, classID, studentID string) (classroom.Enrollment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO class_students (class_id, student_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	e := classroom.Enrollment{ClassID: classID, StudentID: studentID}
	err := q.QueryRow(ctx, query, classID, studentID).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return classroom.Enrollment{}, classroom.ErrAlreadyEnrolled
		}
		return classroom.Enrollment{}, fmt.Errorf("failed to enroll student: %w", err)
	}

	return e, nil
}

// Unenroll implements classroom.EnrollmentRepository.
func (r *enrollmentRepository) Unenroll(ctx context.Context, classID, studentID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM class_students
		WHERE class_id = $1 AND student_id = $2
	`, classID, studentID)
	if err != nil {
		return fmt.Errorf("failed to unenroll student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return classroom.ErrNotEnrolled
	}

	return nil
}

// IsEnrolled implements classroom.EnrollmentRepository.
func (r *enrollmentRepository) IsEnrolled(ctx context.Context, studentID, classID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM class_students
			WHERE student_id = $1 AND class_id = $2
		)
	`, studentID, classID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return exists, nil
}

// ListByClass implements classroom.EnrollmentRepository.
func (r *enrollmentRepository) ListByClass(ctx context.Context, classID string) ([]classroom.Enrollment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT cs.id, cs.class_id, cs.student_id, cs.created_at, u.full_name, u.email
		FROM class_students cs
		JOIN users u ON u.id = cs.student_id
		WHERE cs.class_id = $1
		ORDER BY u.full_name
	`, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []classroom.Enrollment
	for rows.Next() {
		var e classroom.Enrollment
		if err := rows.Scan(
			&e.ID, &e.ClassID, &e.StudentID, &e.CreatedAt, &e.StudentName, &e.StudentEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}

	return enrollments, rows.Err()
}

// ClassIDsByStudent implements classroom.EnrollmentRepository.
func (r *enrollmentRepository) ClassIDsByStudent(ctx context.Context, studentID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT class_id FROM class_students
		WHERE student_id = $1
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student classes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan class id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
