package repository

import (
	"context"
	"time"

	"github.com/safebite/safebite-api/internal/domain/entity"
)

// TemperatureRepository is the persistence port for probe readings.
type TemperatureRepository interface {
	Create(ctx context.Context, rec *entity.TemperatureRecord) error
	GetByID(ctx context.Context, id string) (*entity.TemperatureRecord, error)
	// ListByLocationBetween returns readings in [start, end), newest first.
	ListByLocationBetween(ctx context.Context, locationID string, start, end time.Time) ([]*entity.TemperatureRecord, error)
	UpdateCorrectiveAction(ctx context.Context, id, note string) error
}
