package face

import (
	"strconv"

	"github.com/campuslab/attendance-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Descriptors [][]float64 `json:"descriptors"`
	// Snapshot is an optional base64 photo kept as evidence of who
	// registered the descriptor set
	Snapshot string `json:"snapshot,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Descriptors) < MinDescriptors {
		errs = append(errs, validator.ValidationError{
			Field:   "descriptors",
			Message: "at least 3 face samples are required",
		})
	}
	for i, d := range r.Descriptors {
		if len(d) != DescriptorLength {
			errs = append(errs, validator.ValidationError{
				Field:   "descriptors",
				Message: "descriptor " + strconv.Itoa(i) + " must have 128 values",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterResponse struct {
	StudentID   string `json:"student_id"`
	SampleCount int    `json:"sample_count"`
	Registered  bool   `json:"registered"`
	Status      string `json:"status"`
}

type StatusResponse struct {
	Registered  bool   `json:"registered"`
	SampleCount int    `json:"sample_count"`
	Status      string `json:"status,omitempty"`
}
