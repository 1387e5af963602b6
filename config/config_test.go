package config_test

import (
	"testing"
	"time"

	"github.com/YaCodeDev/GoYaCodeDevTypes/config"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yabytes"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yadate"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yadaterange"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yalogger"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type limits struct {
	Upload   yabytes.Bytes `default:"10Mi"`
	Download yabytes.Bytes `default:"1G"`
}

type reportConfig struct {
	Limits     limits
	ReportName string                  `default:"Ya_Code"`
	Retries    uint8                   `default:"3"`
	Ratio      float64                 `default:"0.5"`
	Enabled    bool                    `default:"true"`
	Window     yadaterange.DateRange   `default:"2020-01..2020-12"`
	Blackouts  []yadaterange.DateRange `default:"2020-12-24..2020-12-26;2020-12-31" separator:";"`
	Holidays   []yadate.Date           `default:"2020-01-01, 2020-12-25"`
	StartMonth time.Month              `default:"1"`
	LogLevel   yalogger.Level          `default:"info"`
	ExistingID int
}

// comparable projection; DateRange and Date are compared by their text form.
type reportView struct {
	Upload, Download int64
	ReportName       string
	Retries          uint8
	Ratio            float64
	Enabled          bool
	Window           string
	Blackouts        []string
	Holidays         []string
	StartMonth       time.Month
	LogLevel         yalogger.Level
	ExistingID       int
}

func view(cfg reportConfig) reportView {
	v := reportView{
		Upload:     cfg.Limits.Upload.Int64(),
		Download:   cfg.Limits.Download.Int64(),
		ReportName: cfg.ReportName,
		Retries:    cfg.Retries,
		Ratio:      cfg.Ratio,
		Enabled:    cfg.Enabled,
		Window:     cfg.Window.String(),
		StartMonth: cfg.StartMonth,
		LogLevel:   cfg.LogLevel,
		ExistingID: cfg.ExistingID,
	}

	for _, blackout := range cfg.Blackouts {
		v.Blackouts = append(v.Blackouts, blackout.String())
	}

	for _, holiday := range cfg.Holidays {
		v.Holidays = append(v.Holidays, holiday.String())
	}

	return v
}

func newLogger() yalogger.Logger {
	return yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.ErrorLevel}).NewLogger()
}

func TestConfigLoader_Defaults(t *testing.T) {
	cfg := reportConfig{ExistingID: 7}

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, newLogger())
	require.Nil(t, err)

	expected := reportView{
		Upload:     10 * 1024 * 1024,
		Download:   1_000_000_000,
		ReportName: "Ya_Code",
		Retries:    3,
		Ratio:      0.5,
		Enabled:    true,
		Window:     "2020-01-01..2020-12-31",
		Blackouts:  []string{"2020-12-24..2020-12-26", "2020-12-31"},
		Holidays:   []string{"2020-01-01", "2020-12-25"},
		StartMonth: time.January,
		LogLevel:   yalogger.InfoLevel,
		ExistingID: 7,
	}

	if diff := cmp.Diff(expected, view(cfg)); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigLoader_Env(t *testing.T) {
	t.Setenv("LIMITS_UPLOAD", "512Ki")
	t.Setenv("WINDOW", "2021-06-01.., ..2020-01-01")
	t.Setenv("BLACKOUTS", "2021-02")
	t.Setenv("LOG_LEVEL", "trace")
	t.Setenv("EXISTING_ID", "99")
	t.Setenv("RETRIES", "5")

	cfg := reportConfig{ExistingID: 7}

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, newLogger())
	require.Nil(t, err)

	got := view(cfg)

	assert.Equal(t, int64(512*1024), got.Upload)
	assert.Equal(t, "2021-06-01..,..2020-01-01", got.Window)
	assert.Equal(t, []string{"2021-02-01..2021-02-28"}, got.Blackouts)
	assert.Equal(t, yalogger.TraceLevel, got.LogLevel)
	assert.Equal(t, 99, got.ExistingID)
	assert.Equal(t, uint8(5), got.Retries)

	assert.True(t, cfg.Window.Contains(yadate.MustParse("1999-01-01")))
}

func TestConfigLoader_InvalidEnv(t *testing.T) {
	t.Setenv("WINDOW", "2020-01-01..2020-02-01..2020-03-01")

	var cfg reportConfig

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, newLogger())
	require.NotNil(t, err)

	assert.ErrorIs(t, err, yadaterange.ErrInvalidComponent)
	assert.Equal(t, "config loader: field Window", err.UnwrapLastError())
}

func TestConfigLoader_Required(t *testing.T) {
	type withRequired struct {
		QuotaLimit yabytes.Bytes
	}

	var cfg withRequired

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, newLogger())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, config.ErrValueIsRequired)

	t.Setenv("QUOTA_LIMIT", "2Gi")

	err = config.LoadConfigStructFromEnvHandlingError(&cfg, newLogger())
	require.Nil(t, err)
	assert.Equal(t, "2Gi", cfg.QuotaLimit.Format(yabytes.Gibibyte))
}

func TestConfigLoader_NotStruct(t *testing.T) {
	value := 42

	err := config.LoadConfigStructFromEnvHandlingError(&value, newLogger())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, config.ErrConfigStructMustBeStruct)
}

func TestGetEnv_DateRange(t *testing.T) {
	fallback := yadaterange.MustParse("2020-01")

	t.Setenv("REPORT_WINDOW", "2020-03..2020-04")

	window := config.GetEnv("REPORT_WINDOW", fallback, false, newLogger())
	assert.Equal(t, "2020-03-01..2020-04-30", window.String())

	t.Setenv("REPORT_WINDOW", "not-a-range")

	window = config.GetEnv("REPORT_WINDOW", fallback, false, newLogger())
	assert.Equal(t, fallback.String(), window.String())

	window = config.GetEnv("MISSING_REPORT_WINDOW", fallback, false, nil)
	assert.Equal(t, fallback.String(), window.String())
}

func TestGetEnvArray_Bytes(t *testing.T) {
	t.Setenv("SIZE_STEPS", "1Ki, 1Mi,1Gi")

	steps := config.GetEnvArray("SIZE_STEPS", []yabytes.Bytes{}, nil, false, newLogger())
	require.Len(t, steps, 3)
	assert.Equal(t, int64(1<<30), steps[2].Int64())

	fallback := []yabytes.Bytes{yabytes.New(1)}

	steps = config.GetEnvArray("MISSING_SIZE_STEPS", fallback, nil, false, newLogger())
	assert.Equal(t, fallback, steps)
}
