// Package fixtures seeds a self-contained demo dataset so a report can be
// generated without preparing a JSON data file first.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/daxhub/timeclock-go/internal/domain/period"
	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
)

func timePtr(t time.Time) *time.Time { return &t }

// DemoCompanySettings returns the company configuration of the demo dataset:
// weekly pay periods starting on Monday with an 8 hour daily overtime policy.
func DemoCompanySettings(anchor time.Time) *timesheet.CompanySettings {
	return &timesheet.CompanySettings{
		CompanyName:                       "Demo Staffing Co",
		PayPeriodType:                     period.PayPeriodWeekly,
		PeriodBeginDate:                   period.DateOf(anchor),
		WeekStartDay:                      0,
		UseCompanyDefaultsForAllEmployees: false,
		Defaults: timesheet.OvertimeSettings{
			DailyOvertime:      true,
			DailyOvertimeValue: 8,
		},
	}
}

// DemoEmployees returns three employees exercising the settings resolution
// paths: company defaults, a weekly overtime override and a paid-break
// override in another timezone.
func DemoEmployees() []timesheet.Employee {
	return []timesheet.Employee{
		{
			ID:                 uuid.MustParse("11111111-1111-4111-8111-111111111111"),
			FirstName:          "Alice",
			LastName:           "Archer",
			Timezone:           "America/New_York",
			UseCompanyDefaults: true,
		},
		{
			ID:        uuid.MustParse("22222222-2222-4222-8222-222222222222"),
			FirstName: "Bob",
			LastName:  "Baker",
			Timezone:  "America/Chicago",
			Overrides: &timesheet.OvertimeSettings{
				DailyOvertime:       true,
				DailyOvertimeValue:  8,
				WeeklyOvertime:      true,
				WeeklyOvertimeValue: 40,
			},
		},
		{
			ID:        uuid.MustParse("33333333-3333-4333-8333-333333333333"),
			FirstName: "Carol",
			LastName:  "Chen",
			Timezone:  "UTC",
			Overrides: &timesheet.OvertimeSettings{
				BreaksArePaid: true,
			},
		},
	}
}

// DemoIntervals returns one work week of raw intervals anchored on the Monday
// of anchor's week: regular shifts with lunch breaks, one long day that trips
// daily overtime and one overnight shift that the normalizer has to split.
func DemoIntervals(anchor time.Time) []timesheet.RawInterval {
	monday := period.DateOf(anchor)
	employees := DemoEmployees()

	shift := func(emp timesheet.Employee, day int, startHour, workHours int) []timesheet.RawInterval {
		loc := emp.Location()
		start := time.Date(monday.Year(), monday.Month(), monday.Day()+day, startHour, 0, 0, 0, loc).UTC()
		return []timesheet.RawInterval{
			{
				ID:         uuid.New(),
				EmployeeID: emp.ID,
				Type:       timesheet.ActionWork,
				Start:      start,
				End:        timePtr(start.Add(time.Duration(workHours) * time.Hour)),
			},
			{
				ID:         uuid.New(),
				EmployeeID: emp.ID,
				Type:       timesheet.ActionBreak,
				Start:      start.Add(4 * time.Hour),
				End:        timePtr(start.Add(4*time.Hour + 30*time.Minute)),
			},
		}
	}

	var intervals []timesheet.RawInterval

	// Alice: five regular days plus a long Wednesday.
	alice := employees[0]
	for day := 0; day < 5; day++ {
		workHours := 8
		if day == 2 {
			workHours = 10
		}
		intervals = append(intervals, shift(alice, day, 9, workHours)...)
	}

	// Bob: long days all week so the weekly override kicks in.
	bob := employees[1]
	for day := 0; day < 5; day++ {
		intervals = append(intervals, shift(bob, day, 7, 10)...)
	}

	// Carol: an overnight shift crossing local midnight on Tuesday.
	carol := employees[2]
	intervals = append(intervals, shift(carol, 0, 9, 8)...)
	overnight := time.Date(monday.Year(), monday.Month(), monday.Day()+1, 22, 0, 0, 0, time.UTC)
	intervals = append(intervals, timesheet.RawInterval{
		ID:         uuid.New(),
		EmployeeID: carol.ID,
		Type:       timesheet.ActionWork,
		Start:      overnight,
		End:        timePtr(overnight.Add(8 * time.Hour)),
		Comment:    "overnight maintenance window",
	})

	return intervals
}
