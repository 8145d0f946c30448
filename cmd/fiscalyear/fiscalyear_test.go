package fiscalyear_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/training-report/cmd/fiscalyear"
	"fjacquet/training-report/internal/config"
	"fjacquet/training-report/internal/container"
	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const records = `[
  {"name": "Alice", "completions": [
    {"name": "Fire Safety", "timestamp": "07/15/2023"},
    {"name": "Ethics", "timestamp": "06/30/2024"}
  ]},
  {"name": "Bob", "completions": [
    {"name": "Fire Safety", "timestamp": "05/01/2024"},
    {"name": "Ethics", "timestamp": "07/01/2024"}
  ]}
]`

func newTestContainer(t *testing.T, content, format string) (*container.Container, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "trainings.txt")
	require.NoError(t, os.WriteFile(input, []byte(content), 0o600))

	cfg := &config.Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "text"
	cfg.Data.InputFile = input
	cfg.Output.Directory = dir
	cfg.Output.FiscalYearFile = "task_2_output"
	cfg.Report.Format = format

	c, err := container.NewContainer(cfg, container.WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)
	return c, dir
}

// splitEcho separates the "Results saved" line from the echoed report.
func splitEcho(t *testing.T, output string) (string, string) {
	t.Helper()
	header, body, found := strings.Cut(output, "\n")
	require.True(t, found)
	return header, body
}

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "fiscal-year", strings.Fields(fiscalyear.Cmd.Use)[0])
	assert.NotNil(t, fiscalyear.Cmd.Flags().Lookup("trainings"))
	assert.NotNil(t, fiscalyear.Cmd.Flags().Lookup("year"))
}

func TestRun_SavesAndEchoesReport(t *testing.T) {
	c, dir := newTestContainer(t, records, "json")
	var out bytes.Buffer

	err := fiscalyear.Run(c, &out, []string{"Fire Safety", "Ethics", "Unknown"}, "2024")
	require.NoError(t, err)

	path := filepath.Join(dir, "task_2_output.json")
	header, body := splitEcho(t, out.String())
	assert.Equal(t, "Results saved to '"+path+"':", header)

	expected := `{"Fire Safety": ["Alice", "Bob"], "Ethics": ["Alice"], "Unknown": []}`
	assert.JSONEq(t, expected, body)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, expected, string(saved))
	assert.Contains(t, string(saved), "\n    \"Fire Safety\": [")
}

func TestRun_YAMLUsesFormatExtension(t *testing.T) {
	c, dir := newTestContainer(t, records, "yaml")
	var out bytes.Buffer

	require.NoError(t, fiscalyear.Run(c, &out, []string{"Ethics"}, " 2025 "))

	saved, err := os.ReadFile(filepath.Join(dir, "task_2_output.yaml"))
	require.NoError(t, err)
	var decoded map[string][]string
	require.NoError(t, yaml.Unmarshal(saved, &decoded))
	assert.Equal(t, map[string][]string{"Ethics": {"Bob"}}, decoded)
}

func TestRun_InvalidYear(t *testing.T) {
	c, dir := newTestContainer(t, records, "json")

	err := fiscalyear.Run(c, &bytes.Buffer{}, []string{"Ethics"}, "twenty")
	require.Error(t, err)
	assert.ErrorIs(t, err, parsererror.ErrInvalidFiscalYear)
	assert.Contains(t, err.Error(), "valid fiscal year")
	assert.NoFileExists(t, filepath.Join(dir, "task_2_output.json"))
}

func TestRun_InvalidTimestampAborts(t *testing.T) {
	bad := `[{"name": "Eve", "completions": [{"name": "Ethics", "timestamp": "2024-01-01"}]}]`
	c, dir := newTestContainer(t, bad, "json")

	err := fiscalyear.Run(c, &bytes.Buffer{}, []string{"Ethics"}, "2024")
	require.Error(t, err)
	assert.ErrorIs(t, err, parsererror.ErrInvalidDateFormat)
	assert.NoFileExists(t, filepath.Join(dir, "task_2_output.json"))
}

func TestRun_RequiresTrainings(t *testing.T) {
	c, _ := newTestContainer(t, records, "json")

	err := fiscalyear.Run(c, &bytes.Buffer{}, nil, "2024")
	assert.Error(t, err)
}
