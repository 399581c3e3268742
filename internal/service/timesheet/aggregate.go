package timesheet

import (
	"time"

	"github.com/daxhub/timeclock-go/internal/domain/period"
	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
	"github.com/daxhub/timeclock-go/internal/pkg/hours"
)

// californiaDailyHours is the portion of a qualifying 7th consecutive day
// that is reclassified as double time.
const californiaDailyHours = 8

// aggregator rolls one employee's normalized actions into day and week
// buckets under that employee's resolved overtime settings. All hour values
// are in the formatter's display units.
type aggregator struct {
	settings timesheet.OvertimeSettings
	fmtr     hours.Formatter

	// begin is the requested range begin; days before it are "previous"
	// days that feed weekly carryover but not range totals.
	begin time.Time
}

// organize walks the chronological actions, grouping them into days and the
// days into the window's weeks. Weeks without any actions are omitted.
func (g *aggregator) organize(actions []timesheet.NormalizedAction, weeks []period.Week, fullBegin, fullEnd time.Time) []timesheet.WeekBucket {
	var out []timesheet.WeekBucket
	if len(weeks) == 0 {
		return out
	}

	var days []timesheet.DayBucket
	var cur *timesheet.DayBucket
	week := 0

	for _, action := range actions {
		d := period.DateOf(action.Start)
		if d.Before(fullBegin) || d.After(fullEnd) {
			continue
		}

		if cur == nil {
			day := g.newDay(d, action)
			cur = &day
			continue
		}
		if cur.Date.Equal(d) {
			cur.Actions = append(cur.Actions, action)
			continue
		}

		days = g.addDay(days, *cur)

		// The finished day may close out one or more weeks before the new
		// action's week begins.
		for !weeks[week].Contains(d) {
			if len(days) > 0 && weeks[week].Contains(days[0].Date) {
				days, out = g.addWeek(days, week, weeks, out)
			}
			week++
		}

		day := g.newDay(d, action)
		cur = &day
	}

	if cur != nil {
		days = g.addDay(days, *cur)
	}
	_, out = g.addWeek(days, week, weeks, out)
	return out
}

func (g *aggregator) newDay(date time.Time, action timesheet.NormalizedAction) timesheet.DayBucket {
	return timesheet.DayBucket{
		Date:     date,
		DateStr:  date.Format("Mon 01/02/06"),
		Actions:  []timesheet.NormalizedAction{action},
		Previous: date.Before(g.begin),
	}
}

// addDay totals the finished day and appends it to the current week's days.
// The California 7th-day rule applies when this is the 7th day of the week
// and each of the 6 prior days reached the qualifying hours.
func (g *aggregator) addDay(days []timesheet.DayBucket, day timesheet.DayBucket) []timesheet.DayBucket {
	calHours := 0
	if g.settings.CaliforniaOvertime && len(days) == 6 {
		qualified := true
		minimum := g.fmtr.Threshold(californiaDailyHours)
		for _, prior := range days {
			if prior.Total < minimum {
				qualified = false
				break
			}
		}
		if qualified {
			calHours = californiaDailyHours
		}
	}
	g.calcDayTotals(&day, calHours)
	return append(days, day)
}

// calcDayTotals sums worked and break time for the day, then layers the
// overtime policy: an optional California double-time carve-out first, then
// the daily overtime threshold, then the double-time threshold whose excess
// is moved out of overtime.
func (g *aggregator) calcDayTotals(day *timesheet.DayBucket, calHours int) {
	for _, a := range day.Actions {
		if a.Type == timesheet.ActionWork {
			day.Total += a.Total
		} else {
			day.Break += a.Total
			day.Total -= a.Total
		}
	}

	if g.settings.DailyOvertime {
		actual := day.Total
		if g.settings.IncludeBreaksInOvertime {
			actual += day.Break
		}

		if calHours > 0 {
			calValue := g.fmtr.Threshold(calHours)
			if actual >= calValue {
				actual -= calValue
				day.DoubleTime = calValue
			} else {
				day.DoubleTime = actual
				actual = 0
			}
		}

		if dailyLimit := g.fmtr.Threshold(g.settings.DailyOvertimeValue); actual > dailyLimit {
			day.Overtime = actual - dailyLimit
		}
		if g.settings.DoubleTime {
			if doubleLimit := g.fmtr.Threshold(g.settings.DoubleTimeValue); actual > doubleLimit {
				day.DoubleTime = actual - doubleLimit
				day.Overtime -= day.DoubleTime
			}
		}
		day.DailyOvertime = day.Overtime
	}

	day.TotalWithBreak = day.Total + day.Break

	day.StrTotal = g.fmtr.String(day.Total)
	day.StrBreak = g.fmtr.String(day.Break)
	day.StrOvertime = g.fmtr.String(day.Overtime)
	day.StrDailyOvertime = g.fmtr.String(day.DailyOvertime)
	day.StrDoubleTime = g.fmtr.String(day.DoubleTime)
	day.StrTotalWithBreak = g.fmtr.String(day.TotalWithBreak)
}

// addWeek totals the accumulated days into the week bucket at weekIdx and
// resets the day accumulator. Weekly overtime is computed over current plus
// previous-day hours after subtracting daily overtime and double time that
// were already counted, so no hour is classified twice.
func (g *aggregator) addWeek(days []timesheet.DayBucket, weekIdx int, weeks []period.Week, out []timesheet.WeekBucket) ([]timesheet.DayBucket, []timesheet.WeekBucket) {
	if len(days) == 0 {
		return days, out
	}

	wk := timesheet.WeekBucket{
		Number:    weekIdx + 1,
		BeginDate: weeks[weekIdx].Start.Format("01/02/06"),
		EndDate:   weeks[weekIdx].End.Format("01/02/06"),
		Days:      days,
	}

	for _, day := range days {
		if day.Previous {
			wk.PreviousTotal += day.Total
			wk.PreviousBreaks += day.Break
		} else {
			wk.Total += day.Total
			wk.Break += day.Break
		}
	}

	if g.settings.DailyOvertime {
		for _, day := range days {
			if day.Previous {
				wk.PreviousDailyOvertime += day.Overtime
			} else {
				wk.Overtime += day.Overtime
				wk.DailyOvertime += day.Overtime
			}
		}
		if g.settings.DoubleTime {
			for _, day := range days {
				if day.Previous {
					wk.PreviousDoubleTime += day.DoubleTime
				} else {
					wk.DoubleTime += day.DoubleTime
				}
			}
		}
	}

	if g.settings.WeeklyOvertime {
		actual := wk.Total + wk.PreviousTotal
		if g.settings.IncludeBreaksInOvertime {
			actual += wk.Break + wk.PreviousBreaks
		}
		if g.settings.DailyOvertime {
			actual -= wk.DailyOvertime + wk.PreviousDailyOvertime
			if g.settings.DoubleTime {
				actual -= wk.DoubleTime + wk.PreviousDoubleTime
			}
		}
		if weeklyLimit := g.fmtr.Threshold(g.settings.WeeklyOvertimeValue); actual > weeklyLimit {
			wk.WeeklyOvertime = actual - weeklyLimit
			wk.Overtime += wk.WeeklyOvertime
		}
	}

	wk.Regular = wk.Total - wk.Overtime
	if g.settings.DoubleTime {
		wk.Regular -= wk.DoubleTime
	}
	wk.TotalWithBreak = wk.Total + wk.Break

	wk.StrTotal = g.fmtr.String(wk.Total)
	wk.StrBreak = g.fmtr.String(wk.Break)
	wk.StrOvertime = g.fmtr.String(wk.Overtime)
	wk.StrDailyOvertime = g.fmtr.String(wk.DailyOvertime)
	wk.StrWeeklyOvertime = g.fmtr.String(wk.WeeklyOvertime)
	wk.StrDoubleTime = g.fmtr.String(wk.DoubleTime)
	wk.StrRegular = g.fmtr.String(wk.Regular)
	wk.StrTotalWithBreak = g.fmtr.String(wk.TotalWithBreak)
	wk.StrPreviousTotal = g.fmtr.String(wk.PreviousTotal)
	wk.StrPreviousBreaks = g.fmtr.String(wk.PreviousBreaks)
	wk.StrPreviousDailyOvertime = g.fmtr.String(wk.PreviousDailyOvertime)
	wk.StrPreviousDoubleTime = g.fmtr.String(wk.PreviousDoubleTime)

	return nil, append(out, wk)
}

// sumEmployee rolls the employee's weeks into their report totals. Policy
// components stay exactly zero when the corresponding flag is disabled.
func (g *aggregator) sumEmployee(emp *timesheet.EmployeeReport) {
	for _, wk := range emp.Weeks {
		emp.Total += wk.Total
		emp.Break += wk.Break
		emp.PreviousTotal += wk.PreviousTotal
		emp.PreviousBreaks += wk.PreviousBreaks
		emp.Overtime += wk.Overtime
		if g.settings.WeeklyOvertime {
			emp.WeeklyOvertime += wk.WeeklyOvertime
		}
		if g.settings.DailyOvertime {
			emp.DailyOvertime += wk.DailyOvertime
		}
		if g.settings.DoubleTime {
			emp.DoubleTime += wk.DoubleTime
		}
	}

	emp.Regular = emp.Total - emp.Overtime
	if g.settings.DoubleTime {
		emp.Regular -= emp.DoubleTime
	}
	emp.TotalWithBreak = emp.Total + emp.Break

	emp.StrTotal = g.fmtr.String(emp.Total)
	emp.StrBreak = g.fmtr.String(emp.Break)
	emp.StrOvertime = g.fmtr.String(emp.Overtime)
	emp.StrDailyOvertime = g.fmtr.String(emp.DailyOvertime)
	emp.StrWeeklyOvertime = g.fmtr.String(emp.WeeklyOvertime)
	emp.StrDoubleTime = g.fmtr.String(emp.DoubleTime)
	emp.StrRegular = g.fmtr.String(emp.Regular)
	emp.StrTotalWithBreak = g.fmtr.String(emp.TotalWithBreak)
	emp.StrPreviousTotal = g.fmtr.String(emp.PreviousTotal)
	emp.StrPreviousBreaks = g.fmtr.String(emp.PreviousBreaks)
}
