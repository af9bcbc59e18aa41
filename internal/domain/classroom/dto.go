package classroom

import (
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type CreateClassRequest struct {
	Name string `json:"name"`
}

func (r *CreateClassRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EnrollRequest struct {
	StudentID string `json:"student_id"`
}

func (r *EnrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StudentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClassResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EnrollmentResponse struct {
	ID           string  `json:"id"`
	ClassID      string  `json:"class_id"`
	StudentID    string  `json:"student_id"`
	StudentName  *string `json:"student_name,omitempty"`
	StudentEmail *string `json:"student_email,omitempty"`
}
