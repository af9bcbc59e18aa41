package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/master/room"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type roomRepository struct {
	db *database.DB
}

func NewRoomRepository(db *database.DB) room.RoomRepository {
	return &roomRepository{db: db}
}

// Create implements room.RoomRepository.
func (r *roomRepository) Create(ctx context.Context, rm room.Room) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rooms (name, building, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rm.Name, rm.Building, rm.Capacity).
		Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return room.Room{}, room.ErrRoomExists
		}
		return room.Room{}, fmt.Errorf("failed to create room: %w", err)
	}

	return rm, nil
}

// GetByID implements room.RoomRepository.
func (r *roomRepository) GetByID(ctx context.Context, id string) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, building, capacity, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var rm room.Room
	err := q.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.Name, &rm.Building, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return room.Room{}, room.ErrRoomNotFound
		}
		return room.Room{}, fmt.Errorf("failed to get room: %w", err)
	}

	return rm, nil
}

// List implements room.RoomRepository.
func (r *roomRepository) List(ctx context.Context) ([]room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, building, capacity, created_at, updated_at
		FROM rooms
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []room.Room
	for rows.Next() {
		var rm room.Room
		if err := rows.Scan(
			&rm.ID, &rm.Name, &rm.Building, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, rm)
	}

	return rooms, rows.Err()
}

// Update implements room.RoomRepository.
func (r *roomRepository) Update(ctx context.Context, rm room.Room) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rooms
		SET name = $2, building = $3, capacity = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, rm.ID, rm.Name, rm.Building, rm.Capacity)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return room.ErrRoomNotFound
	}

	return nil
}

// Delete implements room.RoomRepository.
func (r *roomRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return room.ErrRoomNotFound
	}

	return nil
}
