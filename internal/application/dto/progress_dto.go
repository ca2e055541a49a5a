package dto

// ProgressDay one day of the 7-day progress series.
type ProgressDay struct {
	Date                string `json:"date"` // YYYY-MM-DD
	TemperatureLogs     int    `json:"temperature_logs"`
	ChecklistsCompleted int    `json:"checklists_completed"`
}

// ProgressResponse the week's activity counts for the progress chart.
type ProgressResponse struct {
	Days []ProgressDay `json:"days"`
}
