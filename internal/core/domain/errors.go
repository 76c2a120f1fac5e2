package domain

import "errors"

var (
	// ErrInvalidInput rejects a whole batch of performance rows.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfig is returned for planner or model settings out of range.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrPlanNotFound is returned when a stored plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")
)
