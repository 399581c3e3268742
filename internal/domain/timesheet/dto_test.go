package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daxhub/timeclock-go/internal/pkg/validator"
)

func TestReportRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       ReportRequest
		wantField string
	}{
		{
			name: "valid explicit range",
			req:  ReportRequest{BeginDate: "2026-08-10", EndDate: "2026-08-16"},
		},
		{
			name: "empty dates fall back to the pay period",
			req:  ReportRequest{},
		},
		{
			name:      "malformed begin date",
			req:       ReportRequest{BeginDate: "08/10/2026", EndDate: "2026-08-16"},
			wantField: "begin_date",
		},
		{
			name:      "end date missing when begin given",
			req:       ReportRequest{BeginDate: "2026-08-10"},
			wantField: "end_date",
		},
		{
			name:      "unknown override timezone",
			req:       ReportRequest{OverrideTimezone: "Mars/Olympus_Mons"},
			wantField: "override_timezone",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}
