package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/face"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type faceRepository struct {
	db *database.DB
}

func NewFaceRepository(db *database.DB) face.FaceRepository {
	return &faceRepository{db: db}
}

// Upsert implements face.FaceRepository. One row per student; the
// descriptor set is stored as a JSONB array of 128-float arrays.
func (r *faceRepository) Upsert(ctx context.Context, data face.FaceData) (face.FaceData, error) {
	q := GetQuerier(ctx, r.db)

	descriptors, err := json.Marshal(data.Descriptors)
	if err != nil {
		return face.FaceData{}, fmt.Errorf("failed to encode descriptors: %w", err)
	}

	query := `
		INSERT INTO face_data (student_id, descriptors, sample_count, status, snapshot_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id) DO UPDATE SET
			descriptors = EXCLUDED.descriptors,
			sample_count = EXCLUDED.sample_count,
			status = EXCLUDED.status,
			snapshot_url = EXCLUDED.snapshot_url,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	data.SampleCount = len(data.Descriptors)
	err = q.QueryRow(ctx, query, data.StudentID, descriptors, data.SampleCount, data.Status, data.SnapshotURL).
		Scan(&data.ID, &data.CreatedAt, &data.UpdatedAt)

	if err != nil {
		return face.FaceData{}, fmt.Errorf("failed to upsert face data: %w", err)
	}

	return data, nil
}

// GetByStudent implements face.FaceRepository.
func (r *faceRepository) GetByStudent(ctx context.Context, studentID string) (face.FaceData, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, student_id, descriptors, sample_count, status, snapshot_url, created_at, updated_at
		FROM face_data
		WHERE student_id = $1
	`

	var data face.FaceData
	var descriptors []byte
	err := q.QueryRow(ctx, query, studentID).Scan(
		&data.ID, &data.StudentID, &descriptors, &data.SampleCount, &data.Status, &data.SnapshotURL, &data.CreatedAt, &data.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return face.FaceData{}, face.ErrFaceNotRegistered
		}
		return face.FaceData{}, fmt.Errorf("failed to get face data: %w", err)
	}

	if err := json.Unmarshal(descriptors, &data.Descriptors); err != nil {
		return face.FaceData{}, fmt.Errorf("failed to decode descriptors: %w", err)
	}

	return data, nil
}

// Exists implements face.FaceRepository.
func (r *faceRepository) Exists(ctx context.Context, studentID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM face_data WHERE student_id = $1)
	`, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check face data: %w", err)
	}

	return exists, nil
}

// Delete implements face.FaceRepository.
func (r *faceRepository) Delete(ctx context.Context, studentID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM face_data WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete face data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return face.ErrFaceNotRegistered
	}

	return nil
}
