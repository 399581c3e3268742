// Package period computes pay-period boundaries and expands report date
// ranges into whole weeks. Dates are represented as midnight-UTC time.Time
// values; only the calendar date component is meaningful.
package period

import (
	"errors"
	"time"
)

// Pay period types
const (
	PayPeriodWeekly      = "weekly"
	PayPeriodBiweekly    = "biweekly"
	PayPeriodSemimonthly = "semimonthly"
	PayPeriodMonthly     = "monthly"
)

var ErrInvalidPeriodType = errors.New("invalid pay period type")

// Date builds a midnight-UTC date value.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// PayPeriodRange computes the begin and end dates of the pay period relative
// to today. Weekly and biweekly periods advance from the anchor date until
// the period end passes today. Semimonthly periods split each month into
// [1,15] and [16,end-of-month]. Monthly periods preserve the anchor's
// day-of-month offset, rolling back a month when the computed begin would be
// in the future.
func PayPeriodRange(periodType string, periodBegin, today time.Time) (time.Time, time.Time, error) {
	today = DateOf(today)

	switch periodType {
	case PayPeriodWeekly, PayPeriodBiweekly:
		delta := 7
		if periodType == PayPeriodBiweekly {
			delta = 14
		}
		if periodBegin.IsZero() {
			periodBegin = today
		}
		end := DateOf(periodBegin).AddDate(0, 0, delta-1)
		for !end.After(today) {
			end = end.AddDate(0, 0, delta)
		}
		begin := end.AddDate(0, 0, -delta+1)
		return begin, end, nil

	case PayPeriodSemimonthly:
		if today.Day() > 15 {
			begin := Date(today.Year(), today.Month(), 16)
			end := firstOfNextMonth(begin).AddDate(0, 0, -1)
			return begin, end, nil
		}
		begin := Date(today.Year(), today.Month(), 1)
		return begin, Date(today.Year(), today.Month(), 15), nil

	case PayPeriodMonthly:
		if periodBegin.IsZero() {
			periodBegin = Date(today.Year(), today.Month(), 1)
		}
		daysAdjust := periodBegin.Day() - 1

		begin := Date(today.Year(), today.Month(), 1).AddDate(0, 0, daysAdjust)
		if begin.After(today) {
			begin = Date(begin.Year(), begin.Month(), begin.Day()).AddDate(0, -1, 0)
		}
		end := firstOfNextMonth(begin).AddDate(0, 0, -1+daysAdjust)
		return begin, end, nil

	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriodType
	}
}

func firstOfNextMonth(d time.Time) time.Time {
	year, month := d.Year(), d.Month()
	if month == time.December {
		return Date(year+1, time.January, 1)
	}
	return Date(year, month+1, 1)
}

// weekdayFrom converts Go's Sunday-based weekday to the scheduling
// convention used throughout the engine: 0=Monday .. 6=Sunday.
func weekdayFrom(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ExpandToFullWeeks widens [begin, end] so it tiles exactly into whole weeks
// starting on weekStartDay (0=Monday .. 6=Sunday). The expansion gives the
// overtime math every day of each touched week, including the "previous"
// days before the requested range.
func ExpandToFullWeeks(weekStartDay int, begin, end time.Time) (time.Time, time.Time) {
	begin, end = DateOf(begin), DateOf(end)

	bwd := weekdayFrom(begin)
	var fullBegin time.Time
	if weekStartDay <= bwd {
		fullBegin = begin.AddDate(0, 0, -(bwd - weekStartDay))
	} else {
		fullBegin = begin.AddDate(0, 0, -((7 - weekStartDay) + bwd))
	}

	ewd := weekdayFrom(end)
	var fullEnd time.Time
	if weekStartDay > ewd {
		fullEnd = end.AddDate(0, 0, weekStartDay-ewd-1)
	} else {
		fullEnd = end.AddDate(0, 0, -(ewd - (weekStartDay + 6)))
	}

	return fullBegin, fullEnd
}

// Week is one whole calendar week of the expanded window, inclusive.
type Week struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date d falls inside the week.
func (w Week) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Tile splits the expanded window into its consecutive weeks.
func Tile(fullBegin, fullEnd time.Time) []Week {
	var weeks []Week
	for d := DateOf(fullBegin); d.Before(fullEnd); d = d.AddDate(0, 0, 7) {
		weeks = append(weeks, Week{Start: d, End: d.AddDate(0, 0, 6)})
	}
	return weeks
}
