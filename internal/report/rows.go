package report

import (
	"fjacquet/training-report/internal/models"

	"github.com/shopspring/decimal"
)

// tabularRow is one line of a csv or xlsx report.
type tabularRow interface {
	cells() []interface{}
}

type countRow struct {
	Training string `csv:"training"`
	Count    int    `csv:"count"`
	Share    string `csv:"share_percent"`
}

func (r *countRow) cells() []interface{} {
	return []interface{}{r.Training, r.Count, r.Share}
}

var countHeaders = []string{"training", "count", "share_percent"}

type attendeeRow struct {
	FiscalYear int    `csv:"fiscal_year"`
	Training   string `csv:"training"`
	Person     string `csv:"person"`
}

func (r *attendeeRow) cells() []interface{} {
	return []interface{}{r.FiscalYear, r.Training, r.Person}
}

var attendeeHeaders = []string{"fiscal_year", "training", "person"}

type expirationRow struct {
	Name         string `csv:"name"`
	TrainingName string `csv:"training_name"`
	Status       string `csv:"status"`
}

func (r *expirationRow) cells() []interface{} {
	return []interface{}{r.Name, r.TrainingName, r.Status}
}

var expirationHeaders = []string{"name", "training_name", "status"}

// SharePercent returns count as a percentage of total, rounded to two places.
func SharePercent(count, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

func countRows(counts models.TrainingCounts) []*countRow {
	total := counts.Total()
	rows := make([]*countRow, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, &countRow{
			Training: c.Training,
			Count:    c.Count,
			Share:    SharePercent(c.Count, total).StringFixed(2),
		})
	}
	return rows
}

// attendeeRows emits one row per person, and a row with an empty person for
// trainings nobody completed so every requested training is listed.
func attendeeRows(report *models.FiscalYearReport) []*attendeeRow {
	var rows []*attendeeRow
	for _, res := range report.Results {
		if len(res.People) == 0 {
			rows = append(rows, &attendeeRow{FiscalYear: report.FiscalYear, Training: res.Training})
			continue
		}
		for _, person := range res.People {
			rows = append(rows, &attendeeRow{FiscalYear: report.FiscalYear, Training: res.Training, Person: person})
		}
	}
	return rows
}

func expirationRows(results []models.PersonExpirations) []*expirationRow {
	var rows []*expirationRow
	for _, person := range results {
		for _, training := range person.CompletedTrainings {
			rows = append(rows, &expirationRow{
				Name:         person.Name,
				TrainingName: training.TrainingName,
				Status:       string(training.Status),
			})
		}
	}
	return rows
}
