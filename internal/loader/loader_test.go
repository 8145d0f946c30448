package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {
    "name": "Alice",
    "completions": [
      {"name": "Fire Safety", "timestamp": "07/15/2023", "expires": "10/01/2023"},
      {"name": "Ethics", "timestamp": "01/02/2024", "expires": null}
    ]
  },
  {"name": "Bob", "completions": []}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	mock := logging.NewMockLogger()
	l := NewLoader(mock)

	records := l.Load(writeFile(t, "trainings.txt", sampleJSON))

	require.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0].Name)
	require.Len(t, records[0].Completions, 2)
	assert.Equal(t, "Fire Safety", records[0].Completions[0].Name)
	assert.Equal(t, "07/15/2023", records[0].Completions[0].Timestamp)
	require.NotNil(t, records[0].Completions[0].Expires)
	assert.Equal(t, "10/01/2023", *records[0].Completions[0].Expires)
	assert.Nil(t, records[0].Completions[1].Expires)
	assert.Empty(t, records[1].Completions)

	assert.True(t, mock.HasEntry("INFO", "Loaded training records"))
}

func TestLoader_LoadRecoversFailures(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.txt") }},
		{"invalid json", func(t *testing.T) string { return writeFile(t, "bad.txt", `[{"name": "Alice",`) }},
		{"wrong shape", func(t *testing.T) string { return writeFile(t, "object.txt", `{"name": "Alice"}`) }},
		{"directory", func(t *testing.T) string { return t.TempDir() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := logging.NewMockLogger()
			records := NewLoader(mock).Load(tt.path(t))

			assert.NotNil(t, records)
			assert.Empty(t, records)

			warnings := mock.GetEntriesByLevel("WARN")
			require.Len(t, warnings, 1)
			assert.Error(t, warnings[0].Error)
		})
	}
}

func TestLoader_ReadErrorKinds(t *testing.T) {
	l := NewLoader(logging.NewMockLogger())

	_, err := l.Read(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, parsererror.ErrFileNotReadable)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = l.Read(writeFile(t, "bad.txt", "not json"))
	assert.ErrorIs(t, err, parsererror.ErrMalformedInput)
	assert.NotErrorIs(t, err, parsererror.ErrFileNotReadable)

	var loadErr *parsererror.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.FilePath, "bad.txt")
}

func TestDecode(t *testing.T) {
	records, err := Decode([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	records, err = Decode([]byte("[]"))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = Decode([]byte(`[{"name": 5}]`))
	assert.Error(t, err)
}

func TestNewLoader_NilLogger(t *testing.T) {
	l := NewLoader(nil)
	assert.NotNil(t, l.logger)
}
