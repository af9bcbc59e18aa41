package schedule

import (
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type CreateSlotRequest struct {
	SemesterID *string `json:"semester_id,omitempty"`
	SubjectID  string  `json:"subject_id"`
	ClassID    string  `json:"class_id"`
	RoomID     string  `json:"room_id"`
	TeacherID  string  `json:"teacher_id"`
	Date       string  `json:"date"` // "YYYY-MM-DD"
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
}

func (r *CreateSlotRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"subject_id": r.SubjectID,
		"class_id":   r.ClassID,
		"room_id":    r.RoomID,
		"teacher_id": r.TeacherID,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SlotResponse struct {
	ID          string  `json:"id"`
	SemesterID  *string `json:"semester_id,omitempty"`
	SubjectID   string  `json:"subject_id"`
	SubjectName *string `json:"subject_name,omitempty"`
	SubjectCode *string `json:"subject_code,omitempty"`
	ClassID     string  `json:"class_id"`
	ClassName   *string `json:"class_name,omitempty"`
	RoomID      string  `json:"room_id"`
	RoomName    *string `json:"room_name,omitempty"`
	TeacherID   string  `json:"teacher_id"`
	TeacherName *string `json:"teacher_name,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
}
