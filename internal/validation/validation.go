// Package validation checks training record files before they are reported on.
package validation

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"fjacquet/training-report/internal/dateutils"
	"fjacquet/training-report/internal/models"

	"github.com/go-playground/validator/v10"
)

// Issue describes one problem found in a record set.
type Issue struct {
	Person   string `json:"person" yaml:"person"`
	Training string `json:"training,omitempty" yaml:"training,omitempty"`
	Field    string `json:"field" yaml:"field"`
	Message  string `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	if i.Training == "" {
		return fmt.Sprintf("%s: %s: %s", i.Person, i.Field, i.Message)
	}
	return fmt.Sprintf("%s / %s: %s: %s", i.Person, i.Training, i.Field, i.Message)
}

// recordValidator checks the validate tags of the record models.
var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", isNotBlank)
	_ = v.RegisterValidation("record_date", isRecordDate)

	// Report fields under their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isRecordDate(fl validator.FieldLevel) bool {
	_, err := dateutils.ParseRecordDate(fl.Field().String())
	return err == nil
}

// IsValidInputFile checks that path exists and is a regular file.
func IsValidInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// ValidateRecords returns every blank name and unparseable date in records,
// in traversal order. A nil result means the records are clean.
func ValidateRecords(records models.RecordSet) []Issue {
	var issues []Issue
	for i, person := range records {
		personName := person.Name
		if recordValidator.Struct(person) != nil {
			personName = fmt.Sprintf("#%d", i+1)
			issues = append(issues, Issue{Person: personName, Field: "name", Message: "person name is empty"})
		}

		for _, c := range person.Completions {
			issues = append(issues, completionIssues(personName, c)...)
		}
	}
	return issues
}

func completionIssues(person string, c models.Completion) []Issue {
	err := recordValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []Issue{{Person: person, Training: c.Name, Field: "completion", Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		issue := Issue{Person: person, Training: c.Name, Field: fe.Field()}
		switch fe.Field() {
		case "name":
			issue.Message = "training name is empty"
		case "timestamp":
			issue.Message = dateMessage(c.Timestamp)
		case "expires":
			issue.Message = dateMessage(*c.Expires)
		default:
			issue.Message = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		issues = append(issues, issue)
	}
	return issues
}

func dateMessage(value string) string {
	if _, err := dateutils.ParseRecordDate(value); err != nil {
		return err.Error()
	}
	return "invalid date"
}
