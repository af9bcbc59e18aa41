package attendance

import (
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type VerifyCodeRequest struct {
	Code string `json:"code"`
}

func (r *VerifyCodeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidAttendanceCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 6 alphanumeric characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SessionPreview is returned by code verification so the client can
// confirm the slot before submitting the full check-in payload.
type SessionPreview struct {
	SessionID   string `json:"session_id"`
	SlotID      string `json:"slot_id"`
	SubjectName string `json:"subject_name"`
	SubjectCode string `json:"subject_code"`
	ClassName   string `json:"class_name"`
	RoomName    string `json:"room_name"`
	SlotDate    string `json:"slot_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	ExpiresAt   string `json:"expires_at"`
	Geofence    *Fence `json:"geofence,omitempty"`
}

// Fence describes the campus circle the client should position against.
type Fence struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusM   float64 `json:"radius_m"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CheckInRequest struct {
	SlotID            string    `json:"slot_id"`
	SessionID         string    `json:"session_id"`
	Code              string    `json:"code"`
	FaceVerified      *bool     `json:"face_verified,omitempty"`
	FaceMatchRate     *float64  `json:"face_match_rate,omitempty"`
	FaceImage         string    `json:"face_image,omitempty"`
	Location          *Location `json:"location,omitempty"`
	LivenessCompleted []string  `json:"liveness_completed,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SlotID) {
		errs = append(errs, validator.ValidationError{
			Field:   "slot_id",
			Message: "slot_id is required",
		})
	}
	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if r.Location != nil {
		if !validator.IsValidLatitude(r.Location.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "location.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(r.Location.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "location.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID             string  `json:"id"`
	SessionID      string  `json:"session_id"`
	SlotID         string  `json:"slot_id"`
	Status         string  `json:"status"`
	FaceConfidence float64 `json:"face_confidence"`
	CheckinTime    string  `json:"checkin_time"`
	SubjectName    *string `json:"subject_name,omitempty"`
	SubjectCode    *string `json:"subject_code,omitempty"`
	ClassName      *string `json:"class_name,omitempty"`
	RoomName       *string `json:"room_name,omitempty"`
}

type CheckInResponse struct {
	Success          bool            `json:"success"`
	CheatingDetected bool            `json:"cheating_detected"`
	Record           *RecordResponse `json:"record,omitempty"`
	Message          string          `json:"message"`
}

// SlotStatusResponse tells a student where they stand for one slot.
type SlotStatusResponse struct {
	SlotID        string          `json:"slot_id"`
	SessionActive bool            `json:"session_active"`
	CheckedIn     bool            `json:"checked_in"`
	Record        *RecordResponse `json:"record,omitempty"`
}
