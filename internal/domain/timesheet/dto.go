package timesheet

import (
	"time"

	"github.com/daxhub/timeclock-go/internal/pkg/validator"
	"github.com/google/uuid"
)

// ReportRequest describes one detailed-hours report run. BeginDate and
// EndDate use the 2006-01-02 layout; when both are empty the company's
// current pay period is used instead. An empty EmployeeIDs list selects
// every employee of the company.
type ReportRequest struct {
	BeginDate       string      `json:"begin_date"`
	EndDate         string      `json:"end_date"`
	HoursFormat     string      `json:"hours_format"`
	RoundingMinutes int         `json:"rounding_minutes"`
	EmployeeIDs     []uuid.UUID `json:"employee_ids"`

	// OverrideTimezone renders every employee in one IANA zone instead of
	// each employee's own. Empty means per-employee timezones.
	OverrideTimezone string `json:"override_timezone"`
}

// Validate checks field shapes. Semantic parameter checks (date ordering,
// rounding granularity, hours format) are enforced by the report service with
// the sentinel errors of this package.
func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BeginDate != "" || r.EndDate != "" {
		if !validator.IsValidDate(r.BeginDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "begin_date",
				Message: "begin_date must be in YYYY-MM-DD format",
			})
		}
		if !validator.IsValidDate(r.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.OverrideTimezone != "" && !validator.IsValidTimezone(r.OverrideTimezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "override_timezone",
			Message: "override_timezone must be a valid IANA timezone",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizedAction is one same-calendar-day slice of a raw interval, ready for
// day bucketing. Start and End are in the employee's display timezone and
// always fall on the same local date. Total is already in display units:
// hours rounded to two decimals in decimal format, whole rounded minutes in
// hours-and-minutes format.
type NormalizedAction struct {
	SourceID uuid.UUID  `json:"source_id"`
	Type     ActionType `json:"type"`
	Start    time.Time  `json:"start"`
	End      time.Time  `json:"end"`

	// FirstAction and SecondAction are the display labels for the two
	// boundaries, e.g. "In 09:10 AM" / "Out 05:30 PM".
	FirstAction  string `json:"first_action"`
	SecondAction string `json:"second_action"`

	Comment    string `json:"comment,omitempty"`
	Annotation string `json:"annotation,omitempty"`

	// TempStart and TempEnd mark boundaries that were inferred rather than
	// recorded: midnight splits and predicted or open ends.
	TempStart bool `json:"temp_start"`
	TempEnd   bool `json:"temp_end"`

	Total    float64 `json:"total"`
	StrTotal string  `json:"str_total"`
}

// DayBucket is one calendar day of an employee's week.
type DayBucket struct {
	Date    time.Time          `json:"-"`
	DateStr string             `json:"date"`
	Actions []NormalizedAction `json:"actions"`

	// Previous marks days that belong to the padded week window before the
	// requested range; they feed weekly carryover but not range totals.
	Previous bool `json:"previous"`

	Total          float64 `json:"total"`
	Break          float64 `json:"break"`
	Overtime       float64 `json:"overtime"`
	DailyOvertime  float64 `json:"daily_overtime"`
	DoubleTime     float64 `json:"double_time"`
	TotalWithBreak float64 `json:"total_with_break"`

	StrTotal          string `json:"str_total"`
	StrBreak          string `json:"str_break"`
	StrOvertime       string `json:"str_overtime"`
	StrDailyOvertime  string `json:"str_daily_overtime"`
	StrDoubleTime     string `json:"str_double_time"`
	StrTotalWithBreak string `json:"str_total_with_break"`
}

// WeekBucket is one whole week of the padded report window.
type WeekBucket struct {
	Number    int         `json:"number"`
	BeginDate string      `json:"begin_date"`
	EndDate   string      `json:"end_date"`
	Days      []DayBucket `json:"days"`

	Total                 float64 `json:"total"`
	Break                 float64 `json:"break"`
	Overtime              float64 `json:"overtime"`
	DailyOvertime         float64 `json:"daily_overtime"`
	WeeklyOvertime        float64 `json:"weekly_overtime"`
	DoubleTime            float64 `json:"double_time"`
	Regular               float64 `json:"regular"`
	TotalWithBreak        float64 `json:"total_with_break"`
	PreviousTotal         float64 `json:"previous_total"`
	PreviousBreaks        float64 `json:"previous_breaks"`
	PreviousDailyOvertime float64 `json:"previous_daily_overtime"`
	PreviousDoubleTime    float64 `json:"previous_double_time"`

	StrTotal                 string `json:"str_total"`
	StrBreak                 string `json:"str_break"`
	StrOvertime              string `json:"str_overtime"`
	StrDailyOvertime         string `json:"str_daily_overtime"`
	StrWeeklyOvertime        string `json:"str_weekly_overtime"`
	StrDoubleTime            string `json:"str_double_time"`
	StrRegular               string `json:"str_regular"`
	StrTotalWithBreak        string `json:"str_total_with_break"`
	StrPreviousTotal         string `json:"str_previous_total"`
	StrPreviousBreaks        string `json:"str_previous_breaks"`
	StrPreviousDailyOvertime string `json:"str_previous_daily_overtime"`
	StrPreviousDoubleTime    string `json:"str_previous_double_time"`
}

// SequenceError is one illegal transition found in an employee's
// chronological action stream. It is a diagnostic, never a hard failure.
type SequenceError struct {
	Kind        string `json:"kind"`
	PriorAction string `json:"prior_action"`
	LinkDate    string `json:"link_date"`
	Timestamp   string `json:"timestamp"`
}

// Sequence error kinds
const (
	ErrKindDuplicateAction  = "Duplicate time actions"
	ErrKindBreakWithoutIn   = "Break started when employee is not clocked in"
	ErrKindBreakEndNoStart  = "Break ended when there was no break start"
	ErrKindOutDuringBreak   = "Clocked out when there was no break end"
	ErrKindInWhileClockedIn = "Clocked in when employee was not clocked out"
)

// EmployeeReport is the fully aggregated timesheet of one employee.
type EmployeeReport struct {
	Name       string          `json:"name"`
	Timezone   string          `json:"timezone"`
	PaidBreaks bool            `json:"paid_breaks"`
	Weeks      []WeekBucket    `json:"weeks"`
	Errors     []SequenceError `json:"errors"`

	Total          float64 `json:"total"`
	Break          float64 `json:"break"`
	Overtime       float64 `json:"overtime"`
	DailyOvertime  float64 `json:"daily_overtime"`
	WeeklyOvertime float64 `json:"weekly_overtime"`
	DoubleTime     float64 `json:"double_time"`
	Regular        float64 `json:"regular"`
	TotalWithBreak float64 `json:"total_with_break"`
	PreviousTotal  float64 `json:"previous_total"`
	PreviousBreaks float64 `json:"previous_breaks"`

	StrTotal          string `json:"str_total"`
	StrBreak          string `json:"str_break"`
	StrOvertime       string `json:"str_overtime"`
	StrDailyOvertime  string `json:"str_daily_overtime"`
	StrWeeklyOvertime string `json:"str_weekly_overtime"`
	StrDoubleTime     string `json:"str_double_time"`
	StrRegular        string `json:"str_regular"`
	StrTotalWithBreak string `json:"str_total_with_break"`
	StrPreviousTotal  string `json:"str_previous_total"`
	StrPreviousBreaks string `json:"str_previous_breaks"`
}

// Report is the full detailed-hours report for one company and date range.
type Report struct {
	CompanyName string `json:"company_name"`
	DateRange   string `json:"date_range"`
	BeginDate   string `json:"begin_date"`
	EndDate     string `json:"end_date"`

	// PreviousBeginDate and PreviousDateRange describe the padded days that
	// precede the requested range inside the expanded week window.
	PreviousBeginDate string `json:"previous_begin_date"`
	PreviousDateRange string `json:"previous_date_range"`
	TodaysDate        string `json:"todays_date"`

	HoursFormat     string `json:"hours_format"`
	RoundingMinutes int    `json:"rounding_minutes"`

	// Column-visibility flags: a policy column is shown when the company
	// default enables it or any selected employee's override does.
	ShowDailyOvertime  bool `json:"show_daily_overtime"`
	ShowDoubleTime     bool `json:"show_double_time"`
	ShowWeeklyOvertime bool `json:"show_weekly_overtime"`
	ShowPaidBreaks     bool `json:"show_paid_breaks"`

	Employees []EmployeeReport `json:"employees"`

	Total          float64 `json:"total"`
	Break          float64 `json:"break"`
	Overtime       float64 `json:"overtime"`
	DailyOvertime  float64 `json:"daily_overtime"`
	WeeklyOvertime float64 `json:"weekly_overtime"`
	DoubleTime     float64 `json:"double_time"`
	Regular        float64 `json:"regular"`
	TotalWithBreak float64 `json:"total_with_break"`
	PreviousTotal  float64 `json:"previous_total"`
	PreviousBreaks float64 `json:"previous_breaks"`

	StrTotal          string `json:"str_total"`
	StrBreak          string `json:"str_break"`
	StrOvertime       string `json:"str_overtime"`
	StrDailyOvertime  string `json:"str_daily_overtime"`
	StrWeeklyOvertime string `json:"str_weekly_overtime"`
	StrDoubleTime     string `json:"str_double_time"`
	StrRegular        string `json:"str_regular"`
	StrTotalWithBreak string `json:"str_total_with_break"`
	StrPreviousTotal  string `json:"str_previous_total"`
	StrPreviousBreaks string `json:"str_previous_breaks"`

	// Error is set when any employee has at least one sequence error.
	// AutoInserted is set when the normalizer had to infer boundaries.
	Error        bool `json:"error"`
	AutoInserted bool `json:"auto_inserted"`
}
