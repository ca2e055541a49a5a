package entity

import "time"

// Checklist frequencies.
const (
	FreqDaily   = "daily"
	FreqWeekly  = "weekly"
	FreqMonthly = "monthly"
)

// AllFrequencies in display order.
func AllFrequencies() []string {
	return []string{FreqDaily, FreqWeekly, FreqMonthly}
}

// ValidFrequency reports whether f is a known checklist frequency.
func ValidFrequency(f string) bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly:
		return true
	}
	return false
}

// Checklist is a recurring sheet at a location (e.g. "Opening", "Closing").
// It carries tasks, which carry subtasks; completion is recorded per subtask.
type Checklist struct {
	ID         string
	LocationID string
	Title      string
	Frequency  string
	Tasks      []ChecklistTask
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ChecklistTask groups subtasks under a heading within a checklist.
type ChecklistTask struct {
	ID          string
	ChecklistID string
	Description string
	Position    int
	Subtasks    []ChecklistSubtask
}

// ChecklistSubtask is the tick-able unit of work.
type ChecklistSubtask struct {
	ID          string
	TaskID      string
	Description string
	Position    int
}

// SubtaskCompletion records that a user ticked a subtask on a given date.
// Date is the calendar day (no time component) the tick applies to.
type SubtaskCompletion struct {
	ID          string
	SubtaskID   string
	UserID      string
	LocationID  string
	Date        time.Time
	Completed   bool
	CompletedAt *time.Time // nil when un-ticked
}

// DailySectionOrder sorts daily checklists the way the floor works:
// Opening first, PM next, Closing last, anything else after.
func DailySectionOrder(title string) int {
	switch title {
	case "Opening":
		return 0
	case "PM":
		return 1
	case "Closing":
		return 2
	}
	return 3
}
