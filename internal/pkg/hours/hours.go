// Package hours renders hour totals for timesheet reports in either decimal
// or hours-and-minutes notation. In hours-and-minutes mode every total is a
// whole number of minutes, rounded once per leaf action so that rounding
// error does not compound when re-aggregated up the hierarchy.
package hours

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Display formats
const (
	FormatDecimal         = "decimal"
	FormatHoursAndMinutes = "hours_and_minutes"
)

// ValidRoundings are the supported rounding granularities in minutes.
var ValidRoundings = []int{1, 5, 10, 15}

func IsValidFormat(f string) bool {
	return f == FormatDecimal || f == FormatHoursAndMinutes
}

func IsValidRounding(m int) bool {
	for _, v := range ValidRoundings {
		if m == v {
			return true
		}
	}
	return false
}

// Formatter converts between raw hour durations and the display units of one
// report run. A zero RoundingMinutes is treated as 1.
type Formatter struct {
	Format          string
	RoundingMinutes int
}

func New(format string, roundingMinutes int) Formatter {
	if roundingMinutes <= 0 {
		roundingMinutes = 1
	}
	return Formatter{Format: format, RoundingMinutes: roundingMinutes}
}

// ActionTotal converts one action's duration in hours into display units:
// hours rounded to two decimals, or minutes rounded to the configured
// granularity.
func (f Formatter) ActionTotal(hrs float64) float64 {
	if f.Format == FormatDecimal {
		return round2(hrs)
	}
	granularity := float64(f.RoundingMinutes)
	return granularity * math.Round(hrs*60/granularity)
}

// Threshold scales a whole-hour policy value (e.g. a daily overtime limit)
// into the display units ActionTotal produces.
func (f Formatter) Threshold(h int) float64 {
	if f.Format == FormatDecimal {
		return float64(h)
	}
	return float64(h) * 60
}

// String renders a display-unit total as its report string: "H.hh" in decimal
// format, "H:MM" in hours-and-minutes format.
func (f Formatter) String(v float64) string {
	if f.Format == FormatDecimal {
		return decimal.NewFromFloat(round2(v)).StringFixed(2)
	}
	return Clock(int(math.Round(v)))
}

// Clock renders whole minutes as "H:MM" with zero-padded minutes.
func Clock(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	h := minutes / 60
	m := minutes % 60
	mm := strconv.Itoa(m)
	if m < 10 {
		mm = "0" + mm
	}
	return sign + strconv.Itoa(h) + ":" + mm
}

func round2(v float64) float64 {
	r, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return r
}
