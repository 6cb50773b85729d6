package stepview

import "errors"

var (
	// ErrStepsUnset is returned by index-based operations before SetSteps.
	ErrStepsUnset = errors.New("step list is not set")
	// ErrStepIndex is returned when an index is outside the step list.
	ErrStepIndex = errors.New("step index out of range")
	// ErrInvalidTextSize is returned for a non-positive text size.
	ErrInvalidTextSize = errors.New("invalid text size")
)
