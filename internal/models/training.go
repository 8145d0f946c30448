// Package models defines the training record set and the result types produced
// by the report queries.
package models

// Completion records one person finishing one training.
// Timestamp and Expires use the MM/DD/YYYY layout; a nil Expires means the
// training never expires.
type Completion struct {
	Name      string  `json:"name" yaml:"name" validate:"notblank"`
	Timestamp string  `json:"timestamp" yaml:"timestamp" validate:"record_date"`
	Expires   *string `json:"expires" yaml:"expires" validate:"omitnil,record_date"`
}

// HasExpiration reports whether the completion carries an expiration date.
func (c Completion) HasExpiration() bool {
	return c.Expires != nil
}

// Person is an employee together with the trainings they completed, in file order.
type Person struct {
	Name        string       `json:"name" yaml:"name" validate:"notblank"`
	Completions []Completion `json:"completions" yaml:"completions" validate:"-"`
}

// RecordSet is the full set of people loaded from the input file.
// It is read-only once loaded.
type RecordSet []Person

// CompletionCount returns the number of completions across all people.
func (rs RecordSet) CompletionCount() int {
	total := 0
	for _, p := range rs {
		total += len(p.Completions)
	}
	return total
}
