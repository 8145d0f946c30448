// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/training-report/internal/container"
	"fjacquet/training-report/internal/fileutils"
	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/models"
	"fjacquet/training-report/internal/report"
)

// Output file base names, one per report.
const (
	CountReportFile      = "task_1_output"
	ExpirationReportFile = "task_3_output"
)

// LoadRecords loads the configured input file. Missing or malformed input
// yields an empty record set.
func LoadRecords(c *container.Container) models.RecordSet {
	return c.GetLoader().Load(c.GetConfig().Data.InputFile)
}

// ConsoleFormat is the format used to echo a report to the terminal.
// Binary formats are echoed as JSON.
func ConsoleFormat(format report.Format) report.Format {
	if format.IsBinary() {
		return report.FormatJSON
	}
	return format
}

// Render renders a report in format using generate.
type Render func(format report.Format) ([]byte, error)

// Echo writes the console rendering of a report to out.
func Echo(out io.Writer, format report.Format, render Render) error {
	data, err := render(ConsoleFormat(format))
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}
	return nil
}

// Save writes the report rendered in the container's format to base plus the
// format extension inside the output directory.
func Save(c *container.Container, base string, render Render) (string, error) {
	format := c.GetFormat()
	data, err := render(format)
	if err != nil {
		return "", err
	}
	name := fileutils.ReportFileName(base, format.Extension())
	return c.GetReportWriter().Write(name, data)
}

// Fail logs err and returns it wrapped with a user-facing message.
func Fail(logger logging.Logger, operation, message string, err error) error {
	logger.WithError(err).Error(message, logging.F(logging.FieldOperation, operation))
	return fmt.Errorf("%s: %w", message, err)
}
