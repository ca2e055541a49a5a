package repository

import (
	"context"
	"time"
)

// ProgressRepository serves the read-only count queries behind the progress
// chart. An empty locationID counts across all accessible locations; callers
// resolve scope before asking.
type ProgressRepository interface {
	CountTemperaturesBetween(ctx context.Context, locationID string, start, end time.Time) (int, error)
	CountCompletionsBetween(ctx context.Context, locationID string, start, end time.Time) (int, error)
}
