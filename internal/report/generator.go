// Package report renders training query results as json, yaml, csv or xlsx.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Sheet names used in xlsx reports
const (
	SheetCounts      = "Completion Counts"
	SheetFiscalYear  = "Fiscal Year"
	SheetExpirations = "Expirations"
)

// jsonIndent matches the four-space indentation of the console output.
const jsonIndent = "    "

// ReportGenerator provides functionality to generate training reports in various formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{
		logger: logger.WithField("component", "ReportGenerator"),
	}
}

// GenerateCountReport renders completion counts per training.
func (g *ReportGenerator) GenerateCountReport(counts models.TrainingCounts, format Format) ([]byte, error) {
	if counts == nil {
		counts = models.TrainingCounts{}
	}
	return generate(g, counts, countRows(counts), countHeaders, SheetCounts, format)
}

// GenerateFiscalYearReport renders the attendees per training of a fiscal year.
func (g *ReportGenerator) GenerateFiscalYearReport(report *models.FiscalYearReport, format Format) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("cannot generate a report from a nil fiscal year result")
	}
	return generate(g, report, attendeeRows(report), attendeeHeaders, SheetFiscalYear, format)
}

// GenerateExpirationReport renders expired and soon-to-expire trainings per person.
func (g *ReportGenerator) GenerateExpirationReport(results []models.PersonExpirations, format Format) ([]byte, error) {
	if results == nil {
		results = []models.PersonExpirations{}
	}
	return generate(g, results, expirationRows(results), expirationHeaders, SheetExpirations, format)
}

func generate[T tabularRow](g *ReportGenerator, value interface{}, rows []T, headers []string, sheet string, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = g.generateJSON(value)
	case FormatYAML:
		out, err = g.generateYAML(value)
	case FormatCSV:
		out, err = generateCSV(g, rows, headers)
	case FormatXLSX:
		out, err = generateXLSX(g, rows, headers, sheet)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Generated report",
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldCount, len(rows)))
	return out, nil
}

// generateJSON renders value as indented JSON followed by a newline.
func (g *ReportGenerator) generateJSON(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(value); err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateYAML(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish YAML report: %w", err)
	}
	return buf.Bytes(), nil
}

// generateCSV writes the header row even when there are no rows.
func generateCSV[T tabularRow](g *ReportGenerator, rows []T, headers []string) ([]byte, error) {
	if len(rows) == 0 {
		var buf bytes.Buffer
		w := gocsv.DefaultCSVWriter(&buf)
		if err := w.Write(headers); err != nil {
			return nil, fmt.Errorf("failed to write CSV header: %w", err)
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return out, nil
}

func generateXLSX[T tabularRow](g *ReportGenerator, rows []T, headers []string, sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		cells := row.cells()
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		g.logger.WithError(err).Error("Failed to write XLSX report")
		return nil, fmt.Errorf("failed to write XLSX report: %w", err)
	}
	return buf.Bytes(), nil
}
