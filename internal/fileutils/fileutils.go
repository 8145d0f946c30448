// Package fileutils provides the file operations used to persist reports.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/training-report/internal/logging"
)

// ReportFileMode is the permission of written report files.
const ReportFileMode os.FileMode = 0644

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// WriteFile writes data to a file, creating the file if it doesn't exist
// and creating any parent directories if needed
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// ReportFileName appends extension to base unless base already ends with it.
func ReportFileName(base, extension string) string {
	if extension == "" || strings.HasSuffix(strings.ToLower(base), strings.ToLower(extension)) {
		return base
	}
	return base + extension
}

// ReportWriter persists rendered reports into an output directory.
type ReportWriter struct {
	dir    string
	logger logging.Logger
}

// NewReportWriter creates a ReportWriter for dir. An empty dir means the
// current directory.
func NewReportWriter(dir string, logger logging.Logger) *ReportWriter {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportWriter{dir: dir, logger: logger}
}

// Dir returns the output directory.
func (w *ReportWriter) Dir() string {
	return w.dir
}

// Write stores data as name inside the output directory and returns the full path.
func (w *ReportWriter) Write(name string, data []byte) (string, error) {
	path := filepath.Join(w.dir, name)
	if err := WriteFile(path, data, ReportFileMode); err != nil {
		w.logger.WithError(err).Error("Failed to write report",
			logging.F(logging.FieldOutputFile, path))
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}

	w.logger.Info("Report written",
		logging.F(logging.FieldOutputFile, path),
		logging.F("bytes", len(data)))
	return path, nil
}
