package dto

import "time"

// SubtaskInput a tick-able line when creating or editing a checklist.
type SubtaskInput struct {
	Description string `json:"description" validate:"required"`
}

// TaskInput a task heading with its subtasks.
type TaskInput struct {
	Description string         `json:"description" validate:"required"`
	Subtasks    []SubtaskInput `json:"subtasks"`
}

// CreateChecklistRequest a recurring sheet with its full task tree.
type CreateChecklistRequest struct {
	LocationID string      `json:"location_id" validate:"required,uuid"`
	Title      string      `json:"title" validate:"required,max=200"`
	Frequency  string      `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	Tasks      []TaskInput `json:"tasks"`
}

// UpdateChecklistRequest replaces title/frequency and, when Tasks is
// non-nil, the whole task tree.
type UpdateChecklistRequest struct {
	Title     *string      `json:"title"`
	Frequency *string      `json:"frequency"`
	Tasks     *[]TaskInput `json:"tasks"`
}

// SubtaskResponse a line of a checklist, with today's completion state when
// requested with a user context.
type SubtaskResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskResponse a task heading.
type TaskResponse struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Subtasks    []SubtaskResponse `json:"subtasks"`
}

// ChecklistResponse a sheet with its tree.
type ChecklistResponse struct {
	ID         string         `json:"id"`
	LocationID string         `json:"location_id"`
	Title      string         `json:"title"`
	Frequency  string         `json:"frequency"`
	Tasks      []TaskResponse `json:"tasks"`
}

// FrequencyProgress done/total subtask counts and percentage for one
// frequency bucket.
type FrequencyProgress struct {
	Frequency string  `json:"frequency"`
	Done      int     `json:"done"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// ChecklistBoardResponse the sheet view: checklists grouped with today's
// completion state plus per-frequency progress.
type ChecklistBoardResponse struct {
	Date       string              `json:"date"`
	Checklists []ChecklistResponse `json:"checklists"`
	Progress   []FrequencyProgress `json:"progress"`
}

// ToggleSubtaskRequest tick or untick a subtask for a date.
type ToggleSubtaskRequest struct {
	Date      string `json:"date" validate:"required"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
}

// CalendarDayStatus completion status of one calendar day.
// Status: complete, partial, none, no_tasks.
type CalendarDayStatus struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Done   int    `json:"done"`
	Total  int    `json:"total"`
}

// CalendarResponse day statuses for a month at a location.
type CalendarResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Days  []CalendarDayStatus `json:"days"`
}

// CompletionRecord one completed tick, flattened for exports and activity
// views.
type CompletionRecord struct {
	SubtaskID   string     `json:"subtask_id"`
	UserID      string     `json:"user_id"`
	LocationID  string     `json:"location_id"`
	Date        string     `json:"date"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
