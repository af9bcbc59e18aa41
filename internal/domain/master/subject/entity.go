package subject

import "time"

type Subject struct {
	ID        string
	Code      string
	Name      string
	Credits   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
