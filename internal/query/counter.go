package query

import "fjacquet/training-report/internal/models"

// CountCompletions counts completions per training name, in order of first occurrence.
func CountCompletions(records models.RecordSet) models.TrainingCounts {
	counts := models.TrainingCounts{}
	index := make(map[string]int)

	for _, person := range records {
		for _, completion := range person.Completions {
			i, ok := index[completion.Name]
			if !ok {
				i = len(counts)
				index[completion.Name] = i
				counts = append(counts, models.TrainingCount{Training: completion.Name})
			}
			counts[i].Count++
		}
	}

	return counts
}
