package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safebite/safebite-api/internal/domain/repository"
)

var _ repository.ProgressRepository = (*ProgressRepo)(nil)

// ProgressRepo serves the count queries behind the progress chart.
type ProgressRepo struct {
	pool *pgxpool.Pool
}

func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepo {
	return &ProgressRepo{pool: pool}
}

func (r *ProgressRepo) CountTemperaturesBetween(ctx context.Context, locationID string, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM temperature_records
		WHERE location_id = $1 AND recorded_at >= $2 AND recorded_at < $3`
	var n int
	if err := r.pool.QueryRow(ctx, query, locationID, start, end).Scan(&n); err != nil {
		return 0, fmt.Errorf("count temperatures: %w", err)
	}
	return n, nil
}

func (r *ProgressRepo) CountCompletionsBetween(ctx context.Context, locationID string, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM subtask_completions
		WHERE location_id = $1 AND completed AND date >= $2 AND date < $3`
	var n int
	if err := r.pool.QueryRow(ctx, query, locationID, start, end).Scan(&n); err != nil {
		return 0, fmt.Errorf("count completions: %w", err)
	}
	return n, nil
}
