package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/domain/schedule"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type slotRepository struct {
	db *database.DB
}

func NewSlotRepository(db *database.DB) schedule.SlotRepository {
	return &slotRepository{db: db}
}

const slotSelect = `
	SELECT s.id, s.semester_id, s.subject_id, s.class_id, s.room_id, s.teacher_id,
		   s.date, s.start_time, s.end_time, s.status, s.created_at, s.updated_at,
		   sub.name, sub.code, c.name, r.name, u.full_name
	FROM schedule_slots s
	JOIN subjects sub ON sub.id = s.subject_id
	JOIN classes c ON c.id = s.class_id
	JOIN rooms r ON r.id = s.room_id
	JOIN users u ON u.id = s.teacher_id
`

func scanSlot(row pgx.Row) (schedule.Slot, error) {
	var s schedule.Slot
	err := row.Scan(
		&s.ID, &s.SemesterID, &s.SubjectID, &s.ClassID, &s.RoomID, &s.TeacherID,
		&s.Date, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		&s.SubjectName, &s.SubjectCode, &s.ClassName, &s.RoomName, &s.TeacherName,
	)
	return s, err
}

// Create implements schedule.SlotRepository.
func (r *slotRepository) Create(ctx context.Context, s schedule.Slot) (schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_slots (semester_id, subject_id, class_id, room_id, teacher_id, date, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.SemesterID, s.SubjectID, s.ClassID, s.RoomID, s.TeacherID,
		s.Date, s.StartTime, s.EndTime, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return schedule.Slot{}, fmt.Errorf("failed to create slot: %w", err)
	}

	return s, nil
}

// GetByID implements schedule.SlotRepository.
func (r *slotRepository) GetByID(ctx context.Context, id string) (schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, slotSelect+` WHERE s.id = $1`, id)

	s, err := scanSlot(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Slot{}, schedule.ErrSlotNotFound
		}
		return schedule.Slot{}, fmt.Errorf("failed to get slot: %w", err)
	}

	return s, nil
}

// ListByTeacher implements schedule.SlotRepository.
func (r *slotRepository) ListByTeacher(ctx context.Context, teacherID string) ([]schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, slotSelect+`
		WHERE s.teacher_id = $1
		ORDER BY s.date, s.start_time
	`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher slots: %w", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

// ListUpcomingByClasses implements schedule.SlotRepository.
func (r *slotRepository) ListUpcomingByClasses(ctx context.Context, classIDs []string, from time.Time) ([]schedule.Slot, error) {
	if len(classIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, slotSelect+`
		WHERE s.class_id = ANY($1)
		  AND s.date >= $2
		  AND s.status != 'CANCELLED'
		ORDER BY s.date, s.start_time
	`, classIDs, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming slots: %w", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

func collectSlots(rows pgx.Rows) ([]schedule.Slot, error) {
	var slots []schedule.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// Update implements schedule.SlotRepository.
func (r *slotRepository) Update(ctx context.Context, s schedule.Slot) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE schedule_slots
		SET semester_id = $2, subject_id = $3, class_id = $4, room_id = $5,
		    date = $6, start_time = $7, end_time = $8, status = $9, updated_at = NOW()
		WHERE id = $1
	`, s.ID, s.SemesterID, s.SubjectID, s.ClassID, s.RoomID, s.Date, s.StartTime, s.EndTime, s.Status)
	if err != nil {
		return fmt.Errorf("failed to update slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrSlotNotFound
	}

	return nil
}

// Delete implements schedule.SlotRepository.
func (r *slotRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrSlotNotFound
	}

	return nil
}

// MarkCompletedBefore implements schedule.SlotRepository.
func (r *slotRepository) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// end_time is "HH:MM" local to campus; the date comparison keeps
	// same-day slots untouched until the day is over
	tag, err := q.Exec(ctx, `
		UPDATE schedule_slots
		SET status = 'COMPLETED', updated_at = NOW()
		WHERE status IN ('SCHEDULED', 'IN_PROGRESS')
		  AND (date + end_time::time) < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to mark slots completed: %w", err)
	}

	return tag.RowsAffected(), nil
}
