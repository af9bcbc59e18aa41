package semester

import "errors"

var (
	ErrSemesterNotFound = errors.New("semester not found")
	ErrSemesterExists   = errors.New("semester with this name already exists")
)
