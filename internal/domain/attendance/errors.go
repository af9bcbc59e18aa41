package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrInvalidOrExpiredCode   = errors.New("attendance code is wrong or has expired")
	ErrInvalidCode            = errors.New("attendance code is wrong")
	ErrSessionExpired         = errors.New("attendance session has expired or not started yet")
	ErrSlotMismatch           = errors.New("slot does not match the attendance session")
	ErrAlreadyCheckedIn       = errors.New("you have already checked in for this session")
	ErrRecordNotFound         = errors.New("attendance record not found")
	ErrFaceServiceUnavailable = errors.New("face verification service is unavailable, please retry")
)

// NotEnrolledError rejects a student who does not belong to the slot's
// class, carrying the class name as a hint for the caller.
type NotEnrolledError struct {
	ClassName string
}

func (e *NotEnrolledError) Error() string {
	if e.ClassName == "" {
		return "you are not enrolled in this class"
	}
	return fmt.Sprintf("you are not enrolled in this class: this code is for class %s", e.ClassName)
}
