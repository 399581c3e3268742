package timesheet

import (
	"context"
)

// ReportService defines the timesheet report engine.
type ReportService interface {
	// GenerateDetailedHoursReport normalizes, validates and aggregates the
	// selected employees' time intervals into a detailed hours report.
	// Sequence anomalies never fail the call; they are returned inside the
	// report with its Error flag set.
	GenerateDetailedHoursReport(ctx context.Context, req ReportRequest) (Report, error)
}
