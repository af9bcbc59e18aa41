package subject

import (
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type CreateSubjectRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

func (r *CreateSubjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Credits < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "credits",
			Message: "credits cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubjectResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}
