package postgresql

import (
	"context"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/attendance"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) attendance.RecordRepository {
	return &recordRepository{db: db}
}

// Upsert implements attendance.RecordRepository. Conflict target is
// (session_id, student_id): a retry or resubmission overwrites the row
// instead of duplicating it.
func (r *recordRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			session_id, slot_id, student_id, status, face_image_url, face_confidence,
			checkin_time, location_lat, location_lng, liveness_completed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (session_id, student_id) DO UPDATE SET
			status = EXCLUDED.status,
			face_image_url = EXCLUDED.face_image_url,
			face_confidence = EXCLUDED.face_confidence,
			checkin_time = EXCLUDED.checkin_time,
			location_lat = EXCLUDED.location_lat,
			location_lng = EXCLUDED.location_lng,
			liveness_completed = EXCLUDED.liveness_completed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.SessionID, rec.SlotID, rec.StudentID, rec.Status, rec.FaceImageURL, rec.FaceConfidence,
		rec.CheckinTime, rec.LocationLat, rec.LocationLng, rec.LivenessCompleted,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

// HasPresent implements attendance.RecordRepository.
func (r *recordRepository) HasPresent(ctx context.Context, sessionID, studentID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE session_id = $1 AND student_id = $2 AND status = 'PRESENT'
		)
	`, sessionID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check present record: %w", err)
	}

	return exists, nil
}

// GetBySessionAndStudent implements attendance.RecordRepository.
func (r *recordRepository) GetBySessionAndStudent(ctx context.Context, sessionID, studentID string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, session_id, slot_id, student_id, status, face_image_url, face_confidence,
			   checkin_time, location_lat, location_lng, liveness_completed, created_at, updated_at
		FROM attendance_records
		WHERE session_id = $1 AND student_id = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, sessionID, studentID).Scan(
		&rec.ID, &rec.SessionID, &rec.SlotID, &rec.StudentID, &rec.Status, &rec.FaceImageURL, &rec.FaceConfidence,
		&rec.CheckinTime, &rec.LocationLat, &rec.LocationLng, &rec.LivenessCompleted, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByStudentAndSlot implements attendance.RecordRepository.
func (r *recordRepository) GetByStudentAndSlot(ctx context.Context, studentID, slotID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, session_id, slot_id, student_id, status, face_image_url, face_confidence,
			   checkin_time, location_lat, location_lng, liveness_completed, created_at, updated_at
		FROM attendance_records
		WHERE student_id = $1 AND slot_id = $2
		ORDER BY checkin_time DESC
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, studentID, slotID).Scan(
		&rec.ID, &rec.SessionID, &rec.SlotID, &rec.StudentID, &rec.Status, &rec.FaceImageURL, &rec.FaceConfidence,
		&rec.CheckinTime, &rec.LocationLat, &rec.LocationLng, &rec.LivenessCompleted, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record by slot: %w", err)
	}

	return &rec, nil
}

// ListByStudent implements attendance.RecordRepository.
func (r *recordRepository) ListByStudent(ctx context.Context, studentID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT ar.id, ar.session_id, ar.slot_id, ar.student_id, ar.status, ar.face_image_url,
			   ar.face_confidence, ar.checkin_time, ar.location_lat, ar.location_lng,
			   ar.liveness_completed, ar.created_at, ar.updated_at,
			   sub.name, sub.code, c.name, rm.name
		FROM attendance_records ar
		JOIN schedule_slots s ON s.id = ar.slot_id
		JOIN subjects sub ON sub.id = s.subject_id
		JOIN classes c ON c.id = s.class_id
		JOIN rooms rm ON rm.id = s.room_id
		WHERE ar.student_id = $1
		ORDER BY ar.checkin_time DESC
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.SlotID, &rec.StudentID, &rec.Status, &rec.FaceImageURL,
			&rec.FaceConfidence, &rec.CheckinTime, &rec.LocationLat, &rec.LocationLng,
			&rec.LivenessCompleted, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.SubjectName, &rec.SubjectCode, &rec.ClassName, &rec.RoomName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
