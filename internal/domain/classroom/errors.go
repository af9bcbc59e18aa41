package classroom

import "errors"

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrClassExists     = errors.New("class with this name already exists")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this class")
	ErrNotEnrolled     = errors.New("student is not enrolled in this class")
)
