package face

import "errors"

// Face domain errors
var (
	ErrFaceNotRegistered = errors.New("no registered face data, please register your face first")
	ErrNotEnoughSamples  = errors.New("at least 3 face samples are required")
	ErrInvalidDescriptor = errors.New("each face descriptor must have 128 values")
)
