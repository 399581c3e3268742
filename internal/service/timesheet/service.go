package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daxhub/timeclock-go/internal/domain/period"
	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
	"github.com/daxhub/timeclock-go/internal/pkg/hours"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	timesheet.EmployeeRepository
	timesheet.IntervalRepository
	timesheet.SettingsRepository

	// now is swappable so report runs are reproducible in tests.
	now func() time.Time
}

func NewReportService(
	employeeRepo timesheet.EmployeeRepository,
	intervalRepo timesheet.IntervalRepository,
	settingsRepo timesheet.SettingsRepository,
) timesheet.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository: employeeRepo,
		IntervalRepository: intervalRepo,
		SettingsRepository: settingsRepo,
		now:                time.Now,
	}
}

// GenerateDetailedHoursReport implements timesheet.ReportService.
func (s *ReportServiceImpl) GenerateDetailedHoursReport(ctx context.Context, req timesheet.ReportRequest) (timesheet.Report, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Report{}, err
	}
	if !hours.IsValidFormat(req.HoursFormat) {
		return timesheet.Report{}, timesheet.ErrInvalidHoursFormat
	}
	if !hours.IsValidRounding(req.RoundingMinutes) {
		return timesheet.Report{}, timesheet.ErrInvalidRounding
	}

	company, err := s.SettingsRepository.GetCompanySettings(ctx)
	if err != nil {
		if errors.Is(err, timesheet.ErrMissingCompanySettings) {
			return timesheet.Report{}, err
		}
		return timesheet.Report{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	nowUTC := s.now().UTC()

	begin, end, err := s.resolveRange(req, company, nowUTC)
	if err != nil {
		return timesheet.Report{}, err
	}

	fullBegin, fullEnd := period.ExpandToFullWeeks(company.WeekStartDay, begin, end)
	weeks := period.Tile(fullBegin, fullEnd)

	var overrideLoc *time.Location
	if req.OverrideTimezone != "" {
		overrideLoc, err = time.LoadLocation(req.OverrideTimezone)
		if err != nil {
			return timesheet.Report{}, fmt.Errorf("failed to load override timezone: %w", err)
		}
	}

	employees, err := s.EmployeeRepository.ListEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return timesheet.Report{}, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return timesheet.Report{}, timesheet.ErrNoEmployeesSelected
	}

	intervalsByEmployee, err := s.fetchIntervals(ctx, employees, fullBegin, fullEnd, overrideLoc)
	if err != nil {
		return timesheet.Report{}, err
	}

	fmtr := hours.New(req.HoursFormat, req.RoundingMinutes)

	report := timesheet.Report{
		CompanyName:        company.CompanyName,
		DateRange:          begin.Format("01/02/06") + " - " + end.Format("01/02/06"),
		BeginDate:          begin.Format("01/02/06"),
		EndDate:            end.Format("01/02/06"),
		PreviousBeginDate:  fullBegin.Format("01/02/06"),
		PreviousDateRange:  fullBegin.Format("01/02/06") + " - " + begin.AddDate(0, 0, -1).Format("01/02/06"),
		TodaysDate:         nowUTC.Format("01/02/06"),
		HoursFormat:        req.HoursFormat,
		RoundingMinutes:    req.RoundingMinutes,
		ShowDailyOvertime:  company.Defaults.DailyOvertime,
		ShowDoubleTime:     company.Defaults.DoubleTime,
		ShowWeeklyOvertime: company.Defaults.WeeklyOvertime,
		ShowPaidBreaks:     company.Defaults.BreaksArePaid,
		Employees:          make([]timesheet.EmployeeReport, 0, len(employees)),
	}

	for _, emp := range employees {
		settings := timesheet.ResolveSettings(company, emp)

		// A policy column shows up whenever any selected employee uses it.
		if !company.UseCompanyDefaultsForAllEmployees {
			report.ShowDailyOvertime = report.ShowDailyOvertime || settings.DailyOvertime
			report.ShowDoubleTime = report.ShowDoubleTime || settings.DoubleTime
			report.ShowWeeklyOvertime = report.ShowWeeklyOvertime || settings.WeeklyOvertime
			report.ShowPaidBreaks = report.ShowPaidBreaks || settings.BreaksArePaid
		}

		loc := emp.Location()
		tzName := emp.Timezone
		if overrideLoc != nil {
			loc = overrideLoc
			tzName = req.OverrideTimezone
		}
		if tzName == "" {
			tzName = "UTC"
		}

		empIntervals := intervalsByEmployee[emp.ID]

		n := normalizer{loc: loc, now: nowUTC.In(loc), fmtr: fmtr}
		actions := n.normalize(empIntervals)
		if n.autoInserted {
			report.AutoInserted = true
		}

		seqErrors := validateSequence(deriveEvents(empIntervals, loc))
		if len(seqErrors) > 0 {
			report.Error = true
		}

		agg := aggregator{settings: settings, fmtr: fmtr, begin: begin}
		empReport := timesheet.EmployeeReport{
			Name:       emp.FullName(),
			Timezone:   tzName,
			PaidBreaks: settings.BreaksArePaid,
			Weeks:      agg.organize(actions, weeks, fullBegin, fullEnd),
			Errors:     seqErrors,
		}
		agg.sumEmployee(&empReport)

		report.Employees = append(report.Employees, empReport)
	}

	sumReport(&report, fmtr)
	return report, nil
}

// resolveRange parses the requested dates, falling back to the company's
// current pay period when the request leaves them empty.
func (s *ReportServiceImpl) resolveRange(req timesheet.ReportRequest, company timesheet.CompanySettings, now time.Time) (time.Time, time.Time, error) {
	if req.BeginDate == "" && req.EndDate == "" {
		begin, end, err := period.PayPeriodRange(company.PayPeriodType, company.PeriodBeginDate, now)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return begin, end, nil
	}

	begin, err := time.Parse("2006-01-02", req.BeginDate)
	if err != nil {
		return time.Time{}, time.Time{}, timesheet.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, timesheet.ErrInvalidDateRange
	}
	if end.Before(begin) {
		return time.Time{}, time.Time{}, timesheet.ErrInvalidDateRange
	}
	return period.DateOf(begin), period.DateOf(end), nil
}

// fetchIntervals loads the raw intervals of all selected employees for the
// expanded window and groups them per employee preserving start order. When
// employees render in their own timezones the UTC window is widened a day on
// each side so no locally in-range interval is missed.
func (s *ReportServiceImpl) fetchIntervals(ctx context.Context, employees []timesheet.Employee, fullBegin, fullEnd time.Time, overrideLoc *time.Location) (map[uuid.UUID][]timesheet.RawInterval, error) {
	windowLoc := overrideLoc
	if windowLoc == nil {
		windowLoc = time.UTC
	}
	filterBegin := time.Date(fullBegin.Year(), fullBegin.Month(), fullBegin.Day(), 0, 0, 0, 0, windowLoc).UTC()
	filterEnd := time.Date(fullEnd.Year(), fullEnd.Month(), fullEnd.Day(), 23, 59, 59, 0, windowLoc).UTC()
	if overrideLoc == nil {
		filterBegin = filterBegin.AddDate(0, 0, -1)
		filterEnd = filterEnd.AddDate(0, 0, 1)
	}

	ids := make([]uuid.UUID, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	intervals, err := s.IntervalRepository.FetchRawIntervals(ctx, ids, filterBegin, filterEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw intervals: %w", err)
	}

	grouped := make(map[uuid.UUID][]timesheet.RawInterval, len(employees))
	for _, iv := range intervals {
		grouped[iv.EmployeeID] = append(grouped[iv.EmployeeID], iv)
	}
	return grouped, nil
}

// sumReport rolls the employee totals into the report-wide grand totals. The
// grand total-with-break only counts break time for employees whose breaks
// are paid, so unpaid breaks never inflate the company's worked hours.
func sumReport(report *timesheet.Report, fmtr hours.Formatter) {
	for _, emp := range report.Employees {
		report.Total += emp.Total
		report.Break += emp.Break
		report.PreviousTotal += emp.PreviousTotal
		report.PreviousBreaks += emp.PreviousBreaks
		report.Overtime += emp.Overtime
		if emp.PaidBreaks {
			report.TotalWithBreak += emp.TotalWithBreak
		} else {
			report.TotalWithBreak += emp.Total
		}
		if report.ShowWeeklyOvertime {
			report.WeeklyOvertime += emp.WeeklyOvertime
		}
		if report.ShowDailyOvertime {
			report.DailyOvertime += emp.DailyOvertime
		}
		if report.ShowDoubleTime {
			report.DoubleTime += emp.DoubleTime
		}
	}

	report.Regular = report.Total - report.Overtime
	if report.ShowDoubleTime {
		report.Regular -= report.DoubleTime
	}

	report.StrTotal = fmtr.String(report.Total)
	report.StrBreak = fmtr.String(report.Break)
	report.StrOvertime = fmtr.String(report.Overtime)
	report.StrDailyOvertime = fmtr.String(report.DailyOvertime)
	report.StrWeeklyOvertime = fmtr.String(report.WeeklyOvertime)
	report.StrDoubleTime = fmtr.String(report.DoubleTime)
	report.StrRegular = fmtr.String(report.Regular)
	report.StrTotalWithBreak = fmtr.String(report.TotalWithBreak)
	report.StrPreviousTotal = fmtr.String(report.PreviousTotal)
	report.StrPreviousBreaks = fmtr.String(report.PreviousBreaks)
}
