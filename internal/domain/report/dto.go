package report

import (
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type ReviewRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, []string{StatusReviewed, StatusConfirmed, StatusDismissed}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be REVIEWED, CONFIRMED or DISMISSED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportResponse struct {
	ID          string  `json:"id"`
	SessionID   string  `json:"session_id"`
	SlotID      string  `json:"slot_id"`
	StudentID   string  `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	Type        string  `json:"type"`
	Details     string  `json:"details"`
	Status      string  `json:"status"`
	ReviewNote  *string `json:"review_note,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
