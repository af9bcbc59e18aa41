package response

import (
	"errors"
	"net/http"

	"github.com/campuslab/attendance-backend-go/internal/domain/attendance"
	"github.com/campuslab/attendance-backend-go/internal/domain/auth"
	"github.com/campuslab/attendance-backend-go/internal/domain/classroom"
	"github.com/campuslab/attendance-backend-go/internal/domain/face"
	"github.com/campuslab/attendance-backend-go/internal/domain/master/room"
	"github.com/campuslab/attendance-backend-go/internal/domain/master/semester"
	"github.com/campuslab/attendance-backend-go/internal/domain/master/subject"
	"github.com/campuslab/attendance-backend-go/internal/domain/report"
	"github.com/campuslab/attendance-backend-go/internal/domain/schedule"
	"github.com/campuslab/attendance-backend-go/internal/domain/session"
	"github.com/campuslab/attendance-backend-go/internal/domain/user"
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Enrollment gate carries the class name so the client can show
	// which class the code belongs to
	var notEnrolled *attendance.NotEnrolledError
	if errors.As(err, &notEnrolled) {
		Forbidden(w, notEnrolled.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		NotFound(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrLecturerRoleRequired),
		errors.Is(err, user.ErrStudentRoleRequired):
		Forbidden(w, err.Error())

	// Reference data errors
	case errors.Is(err, semester.ErrSemesterNotFound):
		NotFound(w, "Semester not found")
	case errors.Is(err, semester.ErrSemesterExists):
		Conflict(w, err.Error())
	case errors.Is(err, subject.ErrSubjectNotFound):
		NotFound(w, "Subject not found")
	case errors.Is(err, subject.ErrSubjectCodeExists):
		Conflict(w, err.Error())
	case errors.Is(err, room.ErrRoomNotFound):
		NotFound(w, "Room not found")
	case errors.Is(err, room.ErrRoomExists):
		Conflict(w, err.Error())

	// Classroom domain errors
	case errors.Is(err, classroom.ErrClassNotFound):
		NotFound(w, "Class not found")
	case errors.Is(err, classroom.ErrClassExists):
		Conflict(w, err.Error())
	case errors.Is(err, classroom.ErrAlreadyEnrolled):
		Conflict(w, err.Error())
	case errors.Is(err, classroom.ErrNotEnrolled):
		NotFound(w, err.Error())

	// Schedule domain errors
	case errors.Is(err, schedule.ErrSlotNotFound):
		NotFound(w, "Schedule slot not found")
	case errors.Is(err, schedule.ErrSlotConflict):
		Conflict(w, err.Error())

	// Session domain errors
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")
	case errors.Is(err, session.ErrNotSlotOwner):
		Forbidden(w, err.Error())

	// Check-in pipeline errors
	case errors.Is(err, attendance.ErrInvalidOrExpiredCode):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrInvalidCode):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrSessionExpired):
		Gone(w, err.Error())
	case errors.Is(err, attendance.ErrSlotMismatch):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrFaceServiceUnavailable):
		ServiceUnavailable(w, err.Error())

	// Face domain errors
	case errors.Is(err, face.ErrFaceNotRegistered):
		NotFound(w, err.Error())
	case errors.Is(err, face.ErrNotEnoughSamples),
		errors.Is(err, face.ErrInvalidDescriptor):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, report.ErrInvalidReviewStatus):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
