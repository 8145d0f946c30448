package query

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/training-report/internal/dateutils"
	"fjacquet/training-report/internal/models"
	"fjacquet/training-report/internal/parsererror"
)

// FilterByFiscalYear lists, for each requested training, the people who
// completed it within the fiscal year. Requested names are processed in order
// and independently; a name absent from the records yields an empty list.
// A person appears once per qualifying completion.
func FilterByFiscalYear(records models.RecordSet, trainings []string, fiscalYear int) (*models.FiscalYearReport, error) {
	if err := dateutils.ValidateFiscalYear(fiscalYear); err != nil {
		return nil, err
	}
	start, end := dateutils.FiscalYearWindow(fiscalYear)

	report := &models.FiscalYearReport{
		FiscalYear: fiscalYear,
		Results:    make([]models.TrainingAttendees, 0, len(trainings)),
	}

	for _, training := range trainings {
		people := []string{}
		for _, person := range records {
			for _, completion := range person.Completions {
				if completion.Name != training {
					continue
				}
				completedOn, err := dateutils.ParseRecordDate(completion.Timestamp)
				if err != nil {
					return nil, fmt.Errorf("timestamp of %q for %q: %w", completion.Name, person.Name, err)
				}
				if dateutils.WithinInclusive(completedOn, start, end) {
					people = append(people, person.Name)
				}
			}
		}
		report.Results = append(report.Results, models.TrainingAttendees{Training: training, People: people})
	}

	return report, nil
}

// ParseFiscalYear converts user input into a fiscal year.
func ParseFiscalYear(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &parsererror.InvalidFiscalYearError{Value: input, Reason: "not an integer"}
	}
	if err := dateutils.ValidateFiscalYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

// ParseTrainingList splits a comma separated list such as
// `"Training 1", "Training 2"` into training names. Surrounding spaces and
// double quotes are removed from each item.
func ParseTrainingList(input string) []string {
	parts := strings.Split(input, ",")
	trainings := make([]string, 0, len(parts))
	for _, part := range parts {
		trainings = append(trainings, strings.Trim(strings.TrimSpace(part), `"`))
	}
	return trainings
}
