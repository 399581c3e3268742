package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "timeclock.json", cfg.Report.DataFile)
	assert.Equal(t, "decimal", cfg.Report.HoursFormat)
	assert.Equal(t, 1, cfg.Report.RoundingMinutes)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("REPORT_DATA_FILE", "/var/data/clock.json")
	t.Setenv("REPORT_HOURS_FORMAT", "hours_and_minutes")
	t.Setenv("REPORT_ROUNDING_MINUTES", "15")
	t.Setenv("REPORT_TIMEZONE", "America/New_York")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/var/data/clock.json", cfg.Report.DataFile)
	assert.Equal(t, "hours_and_minutes", cfg.Report.HoursFormat)
	assert.Equal(t, 15, cfg.Report.RoundingMinutes)
	assert.Equal(t, "America/New_York", cfg.Report.Timezone)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("REPORT_HOURS_FORMAT", "sexagesimal")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadRounding(t *testing.T) {
	t.Setenv("REPORT_ROUNDING_MINUTES", "30")
	_, err := Load()
	assert.Error(t, err)
}
