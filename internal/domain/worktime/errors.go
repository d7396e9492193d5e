package worktime

import "errors"

// Worktime domain errors
var (
	ErrInvalidHourlyWage = errors.New("hourly wage must be a non-negative finite number")
	ErrInvalidPeriod     = errors.New("period end must not be before period start")
)
