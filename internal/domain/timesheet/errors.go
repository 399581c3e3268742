package timesheet

import "errors"

// Timesheet report domain errors
var (
	// Parameter errors, rejected before any aggregation begins
	ErrInvalidDateRange   = errors.New("end date must be on or after begin date")
	ErrInvalidRounding    = errors.New("rounding must be 1, 5, 10 or 15 minutes")
	ErrInvalidHoursFormat = errors.New("hours format must be decimal or hours_and_minutes")

	// Configuration errors, fatal for the whole report
	ErrMissingCompanySettings = errors.New("company time tracker settings not found")
	ErrNoEmployeesSelected    = errors.New("no employees selected")
)
