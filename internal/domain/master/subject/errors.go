package subject

import "errors"

var (
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrSubjectCodeExists = errors.New("subject code already exists")
)
