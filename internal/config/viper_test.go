package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnvVars = []string{
	"TRAINING_LOG_LEVEL",
	"TRAINING_LOG_FORMAT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"TRAINING_DATA_INPUT_FILE",
	"TRAINING_OUTPUT_DIRECTORY",
	"TRAINING_OUTPUT_FISCAL_YEAR_FILE",
	"TRAINING_REPORT_FORMAT",
}

// clearTestEnvVars unsets configuration variables for the duration of the test.
func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range testEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, value) })
		}
	}
}

// chdir switches to dir and restores the working directory afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "trainings.txt", config.Data.InputFile)
	assert.Equal(t, ".", config.Output.Directory)
	assert.Equal(t, "task_2_output", config.Output.FiscalYearFile)
	assert.Equal(t, "json", config.Report.Format)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	t.Setenv("TRAINING_LOG_LEVEL", "debug")
	t.Setenv("TRAINING_LOG_FORMAT", "json")
	t.Setenv("TRAINING_DATA_INPUT_FILE", "/data/export.json")
	t.Setenv("TRAINING_OUTPUT_DIRECTORY", "/tmp/reports")
	t.Setenv("TRAINING_REPORT_FORMAT", "csv")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "/data/export.json", config.Data.InputFile)
	assert.Equal(t, "/tmp/reports", config.Output.Directory)
	assert.Equal(t, "csv", config.Report.Format)
}

func TestInitializeConfig_UnprefixedLogLevel(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	t.Setenv("LOG_LEVEL", "warn")

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
data:
  input_file: "records.json"
output:
  directory: "out"
  fiscal_year_file: "fiscal"
report:
  format: "yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "training-report.yaml"), []byte(configContent), 0644))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "records.json", config.Data.InputFile)
	assert.Equal(t, "out", config.Output.Directory)
	assert.Equal(t, "fiscal", config.Output.FiscalYearFile)
	assert.Equal(t, "yaml", config.Report.Format)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
report:
  format: "yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "training-report.yaml"), []byte(configContent), 0644))
	t.Setenv("TRAINING_LOG_LEVEL", "error")
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "yaml", config.Report.Format)
}

func TestInitializeConfig_InvalidEnvironment(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	t.Setenv("TRAINING_REPORT_FORMAT", "pdf")

	config, err := InitializeConfig()
	assert.Nil(t, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report format")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "invalid" }, "invalid log level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"invalid report format", func(c *Config) { c.Report.Format = "pdf" }, "invalid report format"},
		{"empty input file", func(c *Config) { c.Data.InputFile = " " }, "data.input_file must not be empty"},
		{"empty fiscal year file", func(c *Config) { c.Output.FiscalYearFile = "" }, "output.fiscal_year_file must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))
}

func TestIsSupportedReportFormat(t *testing.T) {
	for _, format := range []string{"json", "YAML", "csv", "xlsx"} {
		assert.True(t, IsSupportedReportFormat(format), format)
	}
	assert.False(t, IsSupportedReportFormat("xml"))
	assert.False(t, IsSupportedReportFormat(""))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TRAINING_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("TRAINING_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TRAINING_TEST_MISSING_VALUE", "fallback"))
}

func TestLoadEnvFile(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte("TRAINING_DOTENV_VALUE=from-dotenv\n"), 0644))
	chdir(t, tempDir)
	t.Cleanup(func() { _ = os.Unsetenv("TRAINING_DOTENV_VALUE") })

	assert.Equal(t, ".env", loadEnvFile())
	assert.Equal(t, "from-dotenv", os.Getenv("TRAINING_DOTENV_VALUE"))
}

func validConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.Data.InputFile = "trainings.txt"
	config.Output.Directory = "."
	config.Output.FiscalYearFile = "task_2_output"
	config.Report.Format = "json"
	return config
}
