package room

import (
	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type CreateRoomRequest struct {
	Name     string  `json:"name"`
	Building *string `json:"building,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

func (r *CreateRoomRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Capacity != nil && *r.Capacity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoomResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Building *string `json:"building,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}
