package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/daxhub/timeclock-go/internal/config"
	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
	"github.com/daxhub/timeclock-go/internal/fixtures"
	"github.com/daxhub/timeclock-go/internal/repository/memory"
	timesheetService "github.com/daxhub/timeclock-go/internal/service/timesheet"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	reportData      string
	reportBegin     string
	reportEnd       string
	reportFormat    string
	reportRounding  int
	reportTimezone  string
	reportEmployees []string
	reportDemo      bool
)

var rootCmd = &cobra.Command{
	Use:   "timeclock",
	Short: "Timeclock – timesheet aggregation and overtime reporting",
	Long: `timeclock turns raw clock in/out and break intervals into a verified,
hierarchically aggregated timesheet report with daily, weekly, double-time
and California 7th-day overtime.`,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a detailed hours report from a JSON dataset",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportData, "data", "", "Path to the JSON dataset (default from REPORT_DATA_FILE)")
	reportCmd.Flags().StringVar(&reportBegin, "begin", "", "Report begin date YYYY-MM-DD (empty: current pay period)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "Report end date YYYY-MM-DD (empty: current pay period)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Hours format: decimal or hours_and_minutes")
	reportCmd.Flags().IntVar(&reportRounding, "rounding", 0, "Rounding granularity in minutes: 1, 5, 10 or 15")
	reportCmd.Flags().StringVar(&reportTimezone, "timezone", "", "Render every employee in this IANA timezone")
	reportCmd.Flags().StringSliceVar(&reportEmployees, "employees", nil, "Employee UUIDs to include (empty: all)")
	reportCmd.Flags().BoolVar(&reportDemo, "demo", false, "Run against the built-in demo dataset instead of a file")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	}))

	dataFile := reportData
	if dataFile == "" {
		dataFile = cfg.Report.DataFile
	}
	format := reportFormat
	if format == "" {
		format = cfg.Report.HoursFormat
	}
	rounding := reportRounding
	if rounding == 0 {
		rounding = cfg.Report.RoundingMinutes
	}
	timezone := reportTimezone
	if timezone == "" {
		timezone = cfg.Report.Timezone
	}

	employeeIDs := make([]uuid.UUID, 0, len(reportEmployees))
	for _, raw := range reportEmployees {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid employee id %q: %w", raw, err)
		}
		employeeIDs = append(employeeIDs, id)
	}

	var store *memory.Store
	if reportDemo {
		anchor := mondayOfCurrentWeek()
		store = memory.New(
			fixtures.DemoCompanySettings(anchor),
			fixtures.DemoEmployees(),
			fixtures.DemoIntervals(anchor),
		)
	} else {
		store, err = memory.LoadFile(dataFile)
		if err != nil {
			return err
		}
	}

	service := timesheetService.NewReportService(store, store, store)
	report, err := service.GenerateDetailedHoursReport(cmd.Context(), timesheet.ReportRequest{
		BeginDate:        reportBegin,
		EndDate:          reportEnd,
		HoursFormat:      format,
		RoundingMinutes:  rounding,
		EmployeeIDs:      employeeIDs,
		OverrideTimezone: timezone,
	})
	if err != nil {
		return err
	}

	if report.Error {
		logger.Warn("report contains time action sequence errors", "employees", len(report.Employees))
	}
	if report.AutoInserted {
		logger.Info("report contains auto-inserted interval boundaries")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func mondayOfCurrentWeek() time.Time {
	now := time.Now().UTC()
	offset := (int(now.Weekday()) + 6) % 7
	return now.AddDate(0, 0, -offset)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
