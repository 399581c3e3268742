package timesheet

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActionType identifies whether a raw interval tracked worked time or a break.
type ActionType string

const (
	ActionWork  ActionType = "work"
	ActionBreak ActionType = "break"
)

// RawInterval is one recorded work or break interval as delivered by the
// upstream time clock. Start is a UTC instant; End is nil while the interval
// is still open. TotalSeconds, when present, is the authoritative duration
// precomputed by the source and is used verbatim instead of End-Start.
type RawInterval struct {
	ID           uuid.UUID
	EmployeeID   uuid.UUID
	Type         ActionType
	Start        time.Time
	End          *time.Time
	Comment      string
	TotalSeconds *float64
}

// OvertimeSettings is the resolved overtime and break policy applied to one
// employee for the duration of a report run. Values are whole hours.
type OvertimeSettings struct {
	DailyOvertime           bool
	DailyOvertimeValue      int
	DoubleTime              bool
	DoubleTimeValue         int
	WeeklyOvertime          bool
	WeeklyOvertimeValue     int
	CaliforniaOvertime      bool
	IncludeBreaksInOvertime bool
	BreaksArePaid           bool
}

// Employee carries the identity and per-employee policy overrides needed by
// the report engine. Overrides are snapshotted at employee creation time; when
// the company enforces uniform settings they are ignored entirely.
type Employee struct {
	ID                 uuid.UUID
	FirstName          string
	LastName           string
	Timezone           string
	UseCompanyDefaults bool
	Overrides          *OvertimeSettings
}

// FullName returns "Last, First" as reports list employees.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.LastName + ", " + e.FirstName)
}

// Location resolves the employee's IANA timezone, falling back to UTC when the
// zone name is missing or unknown.
func (e Employee) Location() *time.Location {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil || e.Timezone == "" {
		return time.UTC
	}
	return loc
}

// CompanySettings is the company-wide time tracker configuration. A company
// without a settings record cannot generate reports.
type CompanySettings struct {
	CompanyName string

	PayPeriodType   string
	PeriodBeginDate time.Time

	// WeekStartDay uses the scheduling convention 0=Monday .. 6=Sunday.
	WeekStartDay int

	UseCompanyDefaultsForAllEmployees bool
	Defaults                          OvertimeSettings
}

// ResolveSettings merges the company defaults with an employee's snapshotted
// overrides. The company-wide uniform flag short-circuits to the defaults for
// every employee; otherwise the override record wins when present.
func ResolveSettings(company CompanySettings, emp Employee) OvertimeSettings {
	if company.UseCompanyDefaultsForAllEmployees || emp.UseCompanyDefaults || emp.Overrides == nil {
		return company.Defaults
	}
	return *emp.Overrides
}
