package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
)

func TestStore_ListEmployees(t *testing.T) {
	t.Parallel()

	zoe := timesheet.Employee{ID: uuid.New(), FirstName: "Zoe", LastName: "Archer"}
	amy := timesheet.Employee{ID: uuid.New(), FirstName: "Amy", LastName: "Archer"}
	bob := timesheet.Employee{ID: uuid.New(), FirstName: "Bob", LastName: "Baker"}

	store := New(nil, []timesheet.Employee{bob, zoe, amy}, nil)

	all, err := store.ListEmployees(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Amy", all[0].FirstName)
	assert.Equal(t, "Zoe", all[1].FirstName)
	assert.Equal(t, "Bob", all[2].FirstName)

	some, err := store.ListEmployees(context.Background(), []uuid.UUID{bob.ID})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, bob.ID, some[0].ID)
}

func TestStore_FetchRawIntervals(t *testing.T) {
	t.Parallel()

	empID := uuid.New()
	otherID := uuid.New()

	inRangeEnd := time.Date(2026, time.August, 12, 16, 0, 0, 0, time.UTC)
	before := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)

	intervals := []timesheet.RawInterval{
		// Closed interval ending inside the window.
		{ID: uuid.New(), EmployeeID: empID, Type: timesheet.ActionWork,
			Start: time.Date(2026, time.August, 12, 7, 0, 0, 0, time.UTC), End: &inRangeEnd},
		// Open interval: its start is the lookup instant.
		{ID: uuid.New(), EmployeeID: empID, Type: timesheet.ActionWork,
			Start: time.Date(2026, time.August, 13, 7, 0, 0, 0, time.UTC)},
		// Outside the window.
		{ID: uuid.New(), EmployeeID: empID, Type: timesheet.ActionWork,
			Start: before.Add(-time.Hour), End: &before},
		// Different employee.
		{ID: uuid.New(), EmployeeID: otherID, Type: timesheet.ActionWork,
			Start: time.Date(2026, time.August, 12, 7, 0, 0, 0, time.UTC), End: &inRangeEnd},
	}

	store := New(nil, nil, intervals)

	begin := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 16, 23, 59, 59, 0, time.UTC)

	got, err := store.FetchRawIntervals(context.Background(), []uuid.UUID{empID}, begin, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Start.Before(got[1].Start))
	for _, iv := range got {
		assert.Equal(t, empID, iv.EmployeeID)
	}
}

func TestStore_GetCompanySettings(t *testing.T) {
	t.Parallel()

	_, err := New(nil, nil, nil).GetCompanySettings(context.Background())
	assert.ErrorIs(t, err, timesheet.ErrMissingCompanySettings)

	company := &timesheet.CompanySettings{CompanyName: "Acme Staffing"}
	got, err := New(company, nil, nil).GetCompanySettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme Staffing", got.CompanyName)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	data := `{
	  "company": {
	    "name": "Acme Staffing",
	    "pay_period_type": "weekly",
	    "period_begin_date": "2026-08-10",
	    "week_start_day": 0,
	    "use_company_defaults_for_all_employees": true,
	    "defaults": {"daily_overtime": true, "daily_overtime_value": 8}
	  },
	  "employees": [
	    {"id": "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", "first_name": "Alice", "last_name": "Archer", "timezone": "America/New_York"}
	  ],
	  "intervals": [
	    {"id": "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8c", "employee_id": "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
	     "type": "work", "start": "2026-08-12T07:00:00-04:00", "end": "2026-08-12T16:30:00-04:00"}
	  ]
	}`

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	store, err := LoadFile(path)
	require.NoError(t, err)

	company, err := store.GetCompanySettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme Staffing", company.CompanyName)
	assert.Equal(t, "weekly", company.PayPeriodType)
	assert.Equal(t, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), company.PeriodBeginDate)
	assert.True(t, company.Defaults.DailyOvertime)

	employees, err := store.ListEmployees(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Archer, Alice", employees[0].FullName())
	assert.Equal(t, "America/New_York", employees[0].Timezone)

	intervals, err := store.FetchRawIntervals(context.Background(),
		[]uuid.UUID{employees[0].ID},
		time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 16, 23, 59, 59, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, intervals, 1)

	// Instants are normalized to UTC on load.
	assert.Equal(t, time.UTC, intervals[0].Start.Location())
	assert.Equal(t, time.Date(2026, time.August, 12, 11, 0, 0, 0, time.UTC), intervals[0].Start)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
