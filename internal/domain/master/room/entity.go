package room

import "time"

type Room struct {
	ID        string
	Name      string
	Building  *string
	Capacity  *int
	CreatedAt time.Time
	UpdatedAt time.Time
}
