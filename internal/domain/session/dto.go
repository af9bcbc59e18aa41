package session

import (
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type OpenSessionRequest struct {
	SlotID string `json:"slot_id"`
}

func (r *OpenSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SlotID) {
		errs = append(errs, validator.ValidationError{
			Field:   "slot_id",
			Message: "slot_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OpenSessionResponse carries the one-time raw code disclosure.
type OpenSessionResponse struct {
	SessionID string `json:"session_id"`
	SlotID    string `json:"slot_id"`
	Code      string `json:"code"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
