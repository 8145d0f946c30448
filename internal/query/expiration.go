package query

import (
	"fmt"
	"time"

	"fjacquet/training-report/internal/dateutils"
	"fjacquet/training-report/internal/models"
)

// ExpiringSoonWindowDays is how far past the reference date an expiration
// still counts as "expires soon" (inclusive).
const ExpiringSoonWindowDays = 30

// ClassifyExpirations reports, per person, the completions that are expired
// or expire within ExpiringSoonWindowDays of reference. Completions without an
// expiration date are ignored and people with nothing to report are omitted.
func ClassifyExpirations(records models.RecordSet, reference time.Time) ([]models.PersonExpirations, error) {
	windowEnd := dateutils.AddDays(reference, ExpiringSoonWindowDays)
	results := []models.PersonExpirations{}

	for _, person := range records {
		var statuses []models.TrainingStatus

		for _, completion := range person.Completions {
			if !completion.HasExpiration() {
				continue
			}
			expires, err := dateutils.ParseRecordDate(*completion.Expires)
			if err != nil {
				return nil, fmt.Errorf("expiration of %q for %q: %w", completion.Name, person.Name, err)
			}

			status, ok := Classify(expires, reference, windowEnd)
			if !ok {
				continue
			}
			statuses = append(statuses, models.TrainingStatus{
				TrainingName: completion.Name,
				Status:       status,
			})
		}

		if len(statuses) > 0 {
			results = append(results, models.PersonExpirations{
				Name:               person.Name,
				CompletedTrainings: statuses,
			})
		}
	}

	return results, nil
}

// Classify returns the status of an expiration date, or false when the date
// lies after windowEnd.
func Classify(expires, reference, windowEnd time.Time) (models.ExpirationStatus, bool) {
	if dateutils.CompareDates(expires, reference) < 0 {
		return models.StatusExpired, true
	}
	if dateutils.CompareDates(expires, windowEnd) <= 0 {
		return models.StatusExpiresSoon, true
	}
	return "", false
}
