package repository

import (
	"context"
	"time"

	"github.com/safebite/safebite-api/internal/domain/entity"
)

// ChecklistRepository is the persistence port for checklist sheets and their
// completions. Reads that return a Checklist always load the full
// task/subtask tree.
type ChecklistRepository interface {
	Create(ctx context.Context, cl *entity.Checklist) error
	GetByID(ctx context.Context, id string) (*entity.Checklist, error)
	Update(ctx context.Context, cl *entity.Checklist) error
	Delete(ctx context.Context, id string) error
	ListByLocation(ctx context.Context, locationID string) ([]*entity.Checklist, error)

	// UpsertCompletion inserts or replaces the (subtask, user, date) tick.
	UpsertCompletion(ctx context.Context, c *entity.SubtaskCompletion) error
	// ListCompletionsByUserDate returns the subtask ids a user completed on a date.
	ListCompletionsByUserDate(ctx context.Context, userID string, date time.Time) ([]string, error)
	// ListCompletionsBetween returns completed ticks at a location in [start, end).
	ListCompletionsBetween(ctx context.Context, locationID string, start, end time.Time) ([]*entity.SubtaskCompletion, error)
}
