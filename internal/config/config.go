package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/daxhub/timeclock-go/internal/pkg/hours"
	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Report ReportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// ReportConfig holds the default report parameters used when a run does not
// override them on the command line.
type ReportConfig struct {
	DataFile        string
	HoursFormat     string
	RoundingMinutes int
	Timezone        string
}

func Load() (*Config, error) {
	// A .env file is optional; the environment may already be populated.
	_ = godotenv.Load()

	config := &Config{}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	rounding, err := strconv.Atoi(getEnv("REPORT_ROUNDING_MINUTES", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_ROUNDING_MINUTES: %w", err)
	}

	config.Report = ReportConfig{
		DataFile:        getEnv("REPORT_DATA_FILE", "timeclock.json"),
		HoursFormat:     getEnv("REPORT_HOURS_FORMAT", hours.FormatDecimal),
		RoundingMinutes: rounding,
		Timezone:        getEnv("REPORT_TIMEZONE", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !hours.IsValidFormat(c.Report.HoursFormat) {
		return fmt.Errorf("REPORT_HOURS_FORMAT must be %s or %s", hours.FormatDecimal, hours.FormatHoursAndMinutes)
	}
	if !hours.IsValidRounding(c.Report.RoundingMinutes) {
		return fmt.Errorf("REPORT_ROUNDING_MINUTES must be one of 1, 5, 10, 15")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
