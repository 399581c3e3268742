package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmployee_FullName(t *testing.T) {
	t.Parallel()

	emp := Employee{FirstName: "Alice", LastName: "Archer"}
	assert.Equal(t, "Archer, Alice", emp.FullName())
}

func TestEmployee_Location(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.UTC, Employee{}.Location())
	assert.Equal(t, time.UTC, Employee{Timezone: "Mars/Olympus_Mons"}.Location())

	loc := Employee{Timezone: "America/New_York"}.Location()
	assert.Equal(t, "America/New_York", loc.String())
}

func TestResolveSettings(t *testing.T) {
	t.Parallel()

	defaults := OvertimeSettings{DailyOvertime: true, DailyOvertimeValue: 8}
	overrides := OvertimeSettings{WeeklyOvertime: true, WeeklyOvertimeValue: 40}

	tests := []struct {
		name    string
		company CompanySettings
		emp     Employee
		want    OvertimeSettings
	}{
		{
			name:    "company enforces defaults for everyone",
			company: CompanySettings{UseCompanyDefaultsForAllEmployees: true, Defaults: defaults},
			emp:     Employee{Overrides: &overrides},
			want:    defaults,
		},
		{
			name:    "employee opted into defaults",
			company: CompanySettings{Defaults: defaults},
			emp:     Employee{UseCompanyDefaults: true, Overrides: &overrides},
			want:    defaults,
		},
		{
			name:    "employee without overrides",
			company: CompanySettings{Defaults: defaults},
			emp:     Employee{},
			want:    defaults,
		},
		{
			name:    "employee overrides win",
			company: CompanySettings{Defaults: defaults},
			emp:     Employee{Overrides: &overrides},
			want:    overrides,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveSettings(tt.company, tt.emp))
		})
	}
}
