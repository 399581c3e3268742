package timesheet

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EmployeeRepository defines data access for the employees of the company a
// report is generated for.
type EmployeeRepository interface {
	// ListEmployees returns the employees matching ids ordered by last name
	// then first name. An empty ids slice selects every employee.
	ListEmployees(ctx context.Context, ids []uuid.UUID) ([]Employee, error)
}

// IntervalRepository defines data access for raw time clock intervals.
type IntervalRepository interface {
	// FetchRawIntervals returns the intervals of the given employees whose
	// lookup instant falls inside [begin, end] (UTC), ordered by employee
	// then start time.
	FetchRawIntervals(ctx context.Context, employeeIDs []uuid.UUID, begin, end time.Time) ([]RawInterval, error)
}

// SettingsRepository defines data access for the company time tracker
// configuration.
type SettingsRepository interface {
	// GetCompanySettings returns the company settings record, or
	// ErrMissingCompanySettings when none exists.
	GetCompanySettings(ctx context.Context) (CompanySettings, error)
}
