package report

import "errors"

// Report domain errors
var (
	ErrReportNotFound      = errors.New("cheating report not found")
	ErrInvalidReviewStatus = errors.New("review status must be REVIEWED, CONFIRMED or DISMISSED")
)
