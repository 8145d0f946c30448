package query

import "fjacquet/training-report/internal/models"

func ptr(s string) *string {
	return &s
}

func completion(name, timestamp string, expires *string) models.Completion {
	return models.Completion{Name: name, Timestamp: timestamp, Expires: expires}
}

// sampleRecords mirrors the shape of a real export: several people, shared
// training names, missing and null expirations.
func sampleRecords() models.RecordSet {
	return models.RecordSet{
		{
			Name: "Alice",
			Completions: []models.Completion{
				completion("Fire Safety", "07/15/2023", ptr("10/01/2023")),
				completion("Ethics", "06/30/2024", nil),
				completion("Fire Safety", "01/10/2024", ptr("01/10/2025")),
			},
		},
		{
			Name: "Bob",
			Completions: []models.Completion{
				completion("Ethics", "07/01/2024", ptr("09/30/2023")),
				completion("First Aid", "06/30/2023", ptr("10/31/2023")),
			},
		},
		{
			Name:        "Carol",
			Completions: []models.Completion{},
		},
		{
			Name: "Dave",
			Completions: []models.Completion{
				completion("fire safety", "08/01/2023", ptr("11/01/2023")),
			},
		},
	}
}
