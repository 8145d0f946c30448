// Package loader reads training records from a JSON file.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/models"
	"fjacquet/training-report/internal/parsererror"
)

// Loader reads record files. Failures to read or decode a file are
// recovered by Load as an empty record set.
type Loader struct {
	logger logging.Logger
}

// NewLoader creates a Loader that reports recovered failures to logger.
func NewLoader(logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{logger: logger}
}

// Load returns the records stored in filePath, or an empty record set when the
// file is missing, unreadable or not valid JSON.
func (l *Loader) Load(filePath string) models.RecordSet {
	records, err := l.Read(filePath)
	if err != nil {
		l.logger.WithError(err).Warn("Could not load training records, continuing with no data",
			logging.F(logging.FieldInputFile, filePath))
		return models.RecordSet{}
	}
	return records
}

// Read returns the records stored in filePath. Errors are *parsererror.LoadError
// values matching ErrFileNotReadable or ErrMalformedInput.
func (l *Loader) Read(filePath string) (models.RecordSet, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, &parsererror.LoadError{FilePath: filePath, Kind: parsererror.ErrFileNotReadable, Err: err}
	}

	records, err := Decode(data)
	if err != nil {
		return nil, &parsererror.LoadError{FilePath: filePath, Kind: parsererror.ErrMalformedInput, Err: err}
	}

	l.logger.Info("Loaded training records",
		logging.F(logging.FieldInputFile, filePath),
		logging.F(logging.FieldPeople, len(records)),
		logging.F(logging.FieldCount, records.CompletionCount()))
	return records, nil
}

// Decode parses a JSON array of people. A JSON null decodes to an empty set.
func Decode(data []byte) (models.RecordSet, error) {
	var records models.RecordSet
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode training records: %w", err)
	}
	if records == nil {
		records = models.RecordSet{}
	}
	return records, nil
}
