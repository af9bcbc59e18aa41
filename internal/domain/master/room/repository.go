package room

import "context"

type RoomRepository interface {
	Create(ctx context.Context, r Room) (Room, error)
	GetByID(ctx context.Context, id string) (Room, error)
	List(ctx context.Context) ([]Room, error)
	Update(ctx context.Context, r Room) error
	Delete(ctx context.Context, id string) error
}
