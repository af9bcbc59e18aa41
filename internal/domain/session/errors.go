package session

import "errors"

var (
	ErrSessionNotFound = errors.New("attendance session not found")
	ErrNotSlotOwner    = errors.New("you do not own this schedule slot")
)
