package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/domain/session"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.SessionRepository {
	return &sessionRepository{db: db}
}

// Upsert implements session.SessionRepository. The conflict target is
// (slot_id, teacher_id) so reopening a slot rotates the code and window
// in one statement; the old code dies with the overwritten digest.
func (r *sessionRepository) Upsert(ctx context.Context, s session.Session) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (slot_id, teacher_id, code_hash, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slot_id, teacher_id) DO UPDATE SET
			code_hash = EXCLUDED.code_hash,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.SlotID, s.TeacherID, s.CodeHash, s.StartTime, s.EndTime,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return session.Session{}, fmt.Errorf("failed to upsert session: %w", err)
	}

	return s, nil
}

// GetByID implements session.SessionRepository.
func (r *sessionRepository) GetByID(ctx context.Context, id string) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, slot_id, teacher_id, code_hash, start_time, end_time, created_at, updated_at
		FROM attendance_sessions
		WHERE id = $1
	`

	var s session.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.SlotID, &s.TeacherID, &s.CodeHash, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return session.Session{}, session.ErrSessionNotFound
		}
		return session.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return s, nil
}

// ListActive implements session.SessionRepository.
func (r *sessionRepository) ListActive(ctx context.Context, now time.Time) ([]session.Session, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, slot_id, teacher_id, code_hash, start_time, end_time, created_at, updated_at
		FROM attendance_sessions
		WHERE start_time <= $1 AND end_time >= $1
		ORDER BY created_at DESC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var s session.Session
		if err := rows.Scan(
			&s.ID, &s.SlotID, &s.TeacherID, &s.CodeHash, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// GetActiveBySlot implements session.SessionRepository.
func (r *sessionRepository) GetActiveBySlot(ctx context.Context, slotID string, now time.Time) (*session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, slot_id, teacher_id, code_hash, start_time, end_time, created_at, updated_at
		FROM attendance_sessions
		WHERE slot_id = $1 AND start_time <= $2 AND end_time >= $2
		LIMIT 1
	`

	var s session.Session
	err := q.QueryRow(ctx, query, slotID, now).Scan(
		&s.ID, &s.SlotID, &s.TeacherID, &s.CodeHash, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active session for slot: %w", err)
	}

	return &s, nil
}

// DeleteExpiredBefore implements session.SessionRepository.
func (r *sessionRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM attendance_sessions
		WHERE end_time < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}
