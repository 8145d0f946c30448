// Package dateutils provides the date parsing and date-window arithmetic used by
// the training reports.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fjacquet/training-report/internal/parsererror"
)

// Date layouts used throughout the application
const (
	// DateLayoutRecord is the canonical layout of completion timestamps and
	// expiration dates (MM/DD/YYYY).
	DateLayoutRecord = "01/02/2006"
	// DateLayoutOrdinal is the layout of a user-supplied date once its ordinal
	// suffix has been removed ("Oct 1, 2023").
	DateLayoutOrdinal = "Jan 2, 2006"

	// dateLayoutRecordLenient accepts single-digit months and days as well.
	dateLayoutRecordLenient = "1/2/2006"

	// RecordDateHint and OrdinalDateHint describe the expected input for error messages.
	RecordDateHint  = "MM/DD/YYYY"
	OrdinalDateHint = "Oct 1st, 2023"
)

// Fiscal years start on July 1 of the previous calendar year.
const (
	FiscalYearStartMonth = time.July
	FiscalYearEndMonth   = time.June
	MinFiscalYear        = 2
	MaxFiscalYear        = 9999
)

// OrdinalSuffixes are removed from ordinal dates before parsing, in this order.
var OrdinalSuffixes = []string{"st", "nd", "rd", "th"}

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespace.ReplaceAllString(dateStr, " ")
}

// StripOrdinalSuffixes removes every occurrence of the ordinal suffixes.
// The replacement is substring-based: it also rewrites letters inside month
// names ("August" becomes "Augu").
func StripOrdinalSuffixes(dateStr string) string {
	for _, suffix := range OrdinalSuffixes {
		dateStr = strings.ReplaceAll(dateStr, suffix, "")
	}
	return dateStr
}

// ParseOrdinalDate parses a human-readable date such as "Oct 1st, 2023".
func ParseOrdinalDate(input string) (time.Time, error) {
	cleaned := CleanDateString(StripOrdinalSuffixes(input))

	t, err := time.Parse(DateLayoutOrdinal, cleaned)
	if err != nil {
		return time.Time{}, &parsererror.InvalidDateFormatError{
			Field:  "date",
			Value:  input,
			Layout: OrdinalDateHint,
			Err:    err,
		}
	}
	return t, nil
}

// ParseRecordDate parses a MM/DD/YYYY date as stored in the record file.
func ParseRecordDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayoutRecordLenient, value)
	if err != nil {
		return time.Time{}, &parsererror.InvalidDateFormatError{
			Field:  "record date",
			Value:  value,
			Layout: RecordDateHint,
			Err:    err,
		}
	}
	return t, nil
}

// FormatRecordDate formats a date as MM/DD/YYYY
func FormatRecordDate(date time.Time) string {
	return date.Format(DateLayoutRecord)
}

// ParseReferenceDate parses the reference date of an expiration report.
// The ordinal format is tried first, then MM/DD/YYYY. When both fail the
// ordinal parsing error is returned.
func ParseReferenceDate(input string) (time.Time, error) {
	t, err := ParseOrdinalDate(input)
	if err == nil {
		return t, nil
	}
	if recordDate, recordErr := ParseRecordDate(strings.TrimSpace(input)); recordErr == nil {
		return recordDate, nil
	}
	return time.Time{}, err
}

// ValidateFiscalYear checks that the fiscal year window can be represented.
func ValidateFiscalYear(year int) error {
	if year < MinFiscalYear || year > MaxFiscalYear {
		return &parsererror.InvalidFiscalYearError{
			Value:  strconv.Itoa(year),
			Reason: fmt.Sprintf("must be between %d and %d", MinFiscalYear, MaxFiscalYear),
		}
	}
	return nil
}

// FiscalYearWindow returns the first and last day of fiscal year year:
// July 1 of year-1 through June 30 of year.
func FiscalYearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year-1, FiscalYearStartMonth, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, FiscalYearEndMonth, 30, 0, 0, 0, 0, time.UTC)
	return start, end
}

// FiscalYearOf returns the fiscal year a date belongs to.
func FiscalYearOf(date time.Time) int {
	if date.Month() >= FiscalYearStartMonth {
		return date.Year() + 1
	}
	return date.Year()
}

// WithinInclusive reports whether date lies in [start, end].
func WithinInclusive(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// AddDays returns date shifted by days calendar days
func AddDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// CompareDates compares two dates and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	// Normalize dates to remove time component
	date1 = time.Date(date1.Year(), date1.Month(), date1.Day(), 0, 0, 0, 0, time.UTC)
	date2 = time.Date(date2.Year(), date2.Month(), date2.Day(), 0, 0, 0, 0, time.UTC)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	} else {
		return 0
	}
}
