package report

import (
	"fmt"
	"strings"
)

// Format is an output format for reports.
type Format string

// Supported report formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat converts a format name (case-insensitive) into a Format.
// "yml" is accepted as an alias of yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", name)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// IsBinary reports whether the rendered report should not be echoed to a terminal.
func (f Format) IsBinary() bool {
	return f == FormatXLSX
}
