// Package memory provides an in-memory implementation of the timesheet
// repositories, loadable from a JSON dataset file. It stands in for the
// persistence layer the engine treats as an external collaborator and backs
// the CLI harness and the service tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
	"github.com/google/uuid"
)

type Store struct {
	company   *timesheet.CompanySettings
	employees []timesheet.Employee
	intervals []timesheet.RawInterval
}

// New builds a store from already-constructed domain values. The inputs are
// copied; the store never mutates them afterwards.
func New(company *timesheet.CompanySettings, employees []timesheet.Employee, intervals []timesheet.RawInterval) *Store {
	s := &Store{company: company}
	s.employees = append(s.employees, employees...)
	s.intervals = append(s.intervals, intervals...)
	return s
}

// ListEmployees implements timesheet.EmployeeRepository.
func (s *Store) ListEmployees(_ context.Context, ids []uuid.UUID) ([]timesheet.Employee, error) {
	selected := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	var out []timesheet.Employee
	for _, emp := range s.employees {
		if len(ids) == 0 || selected[emp.ID] {
			out = append(out, emp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

// FetchRawIntervals implements timesheet.IntervalRepository. The lookup
// instant of an interval is its end when closed, otherwise its start.
func (s *Store) FetchRawIntervals(_ context.Context, employeeIDs []uuid.UUID, begin, end time.Time) ([]timesheet.RawInterval, error) {
	selected := make(map[uuid.UUID]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		selected[id] = true
	}

	var out []timesheet.RawInterval
	for _, iv := range s.intervals {
		if !selected[iv.EmployeeID] {
			continue
		}
		lookup := iv.Start
		if iv.End != nil {
			lookup = *iv.End
		}
		if lookup.Before(begin) || lookup.After(end) {
			continue
		}
		out = append(out, iv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID.String() < out[j].EmployeeID.String()
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

// GetCompanySettings implements timesheet.SettingsRepository.
func (s *Store) GetCompanySettings(_ context.Context) (timesheet.CompanySettings, error) {
	if s.company == nil {
		return timesheet.CompanySettings{}, timesheet.ErrMissingCompanySettings
	}
	return *s.company, nil
}

// ========================================
// JSON dataset file
// ========================================

type datasetFile struct {
	Company   *companyRecord   `json:"company"`
	Employees []employeeRecord `json:"employees"`
	Intervals []intervalRecord `json:"intervals"`
}

type companyRecord struct {
	Name                              string         `json:"name"`
	PayPeriodType                     string         `json:"pay_period_type"`
	PeriodBeginDate                   string         `json:"period_begin_date"`
	WeekStartDay                      int            `json:"week_start_day"`
	UseCompanyDefaultsForAllEmployees bool           `json:"use_company_defaults_for_all_employees"`
	Defaults                          settingsRecord `json:"defaults"`
}

type settingsRecord struct {
	DailyOvertime           bool `json:"daily_overtime"`
	DailyOvertimeValue      int  `json:"daily_overtime_value"`
	DoubleTime              bool `json:"double_time"`
	DoubleTimeValue         int  `json:"double_time_value"`
	WeeklyOvertime          bool `json:"weekly_overtime"`
	WeeklyOvertimeValue     int  `json:"weekly_overtime_value"`
	CaliforniaOvertime      bool `json:"california_overtime"`
	IncludeBreaksInOvertime bool `json:"include_breaks_in_overtime_calc"`
	BreaksArePaid           bool `json:"breaks_are_paid"`
}

type employeeRecord struct {
	ID                 uuid.UUID       `json:"id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	Timezone           string          `json:"timezone"`
	UseCompanyDefaults bool            `json:"use_company_defaults"`
	Overrides          *settingsRecord `json:"overrides"`
}

type intervalRecord struct {
	ID           uuid.UUID  `json:"id"`
	EmployeeID   uuid.UUID  `json:"employee_id"`
	Type         string     `json:"type"`
	Start        time.Time  `json:"start"`
	End          *time.Time `json:"end"`
	Comment      string     `json:"comment"`
	TotalSeconds *float64   `json:"total_seconds"`
}

// LoadFile reads a JSON dataset and builds a store from it.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var file datasetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	var company *timesheet.CompanySettings
	if file.Company != nil {
		c := timesheet.CompanySettings{
			CompanyName:                       file.Company.Name,
			PayPeriodType:                     file.Company.PayPeriodType,
			WeekStartDay:                      file.Company.WeekStartDay,
			UseCompanyDefaultsForAllEmployees: file.Company.UseCompanyDefaultsForAllEmployees,
			Defaults:                          file.Company.Defaults.toDomain(),
		}
		if file.Company.PeriodBeginDate != "" {
			anchor, err := time.Parse("2006-01-02", file.Company.PeriodBeginDate)
			if err != nil {
				return nil, fmt.Errorf("failed to parse period_begin_date: %w", err)
			}
			c.PeriodBeginDate = anchor
		}
		company = &c
	}

	employees := make([]timesheet.Employee, 0, len(file.Employees))
	for _, rec := range file.Employees {
		emp := timesheet.Employee{
			ID:                 rec.ID,
			FirstName:          rec.FirstName,
			LastName:           rec.LastName,
			Timezone:           rec.Timezone,
			UseCompanyDefaults: rec.UseCompanyDefaults,
		}
		if rec.Overrides != nil {
			overrides := rec.Overrides.toDomain()
			emp.Overrides = &overrides
		}
		employees = append(employees, emp)
	}

	intervals := make([]timesheet.RawInterval, 0, len(file.Intervals))
	for _, rec := range file.Intervals {
		actionType := timesheet.ActionWork
		if rec.Type == string(timesheet.ActionBreak) {
			actionType = timesheet.ActionBreak
		}
		intervals = append(intervals, timesheet.RawInterval{
			ID:           rec.ID,
			EmployeeID:   rec.EmployeeID,
			Type:         actionType,
			Start:        rec.Start.UTC(),
			End:          utcPtr(rec.End),
			Comment:      rec.Comment,
			TotalSeconds: rec.TotalSeconds,
		})
	}

	return New(company, employees, intervals), nil
}

func (r settingsRecord) toDomain() timesheet.OvertimeSettings {
	return timesheet.OvertimeSettings{
		DailyOvertime:           r.DailyOvertime,
		DailyOvertimeValue:      r.DailyOvertimeValue,
		DoubleTime:              r.DoubleTime,
		DoubleTimeValue:         r.DoubleTimeValue,
		WeeklyOvertime:          r.WeeklyOvertime,
		WeeklyOvertimeValue:     r.WeeklyOvertimeValue,
		CaliforniaOvertime:      r.CaliforniaOvertime,
		IncludeBreaksInOvertime: r.IncludeBreaksInOvertime,
		BreaksArePaid:           r.BreaksArePaid,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
