package schedule

import "errors"

var (
	ErrSlotNotFound = errors.New("schedule slot not found")
	ErrSlotConflict = errors.New("slot overlaps an existing slot for this room or class")
)
