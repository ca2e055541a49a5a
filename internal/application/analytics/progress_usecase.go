// Package analytics holds the read-only activity aggregations behind the
// progress chart.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

const progressDays = 7 // days shown on the progress chart

// ProgressUseCase builds the rolling 7-day activity series for a location:
// temperature logs recorded and checklist subtasks completed per service day.
//
// Data source: ProgressRepository (read-only count queries). It never touches
// the record tables directly.
type ProgressUseCase struct {
	progressRepo repository.ProgressRepository
	locationRepo repository.LocationRepository
	now          func() time.Time
}

// NewProgressUseCase builds the use case.
func NewProgressUseCase(progressRepo repository.ProgressRepository, locationRepo repository.LocationRepository) *ProgressUseCase {
	return &ProgressUseCase{progressRepo: progressRepo, locationRepo: locationRepo, now: time.Now}
}

// WeekSeries returns the last 7 service days of activity at a location,
// oldest first. Days follow the 02:00 kitchen boundary, so early-morning
// activity counts against the previous day.
//
// One goroutine per day; each runs both count queries for its slot.
func (uc *ProgressUseCase) WeekSeries(ctx context.Context, scope rbac.Scope, locationID string) (*dto.ProgressResponse, error) {
	loc, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanAccessLocation(loc.CompanyID, loc.ID) {
		return nil, domain.ErrLocationDenied
	}

	todayStart, _ := entity.ServiceDay(uc.now())

	type dayResult struct {
		idx   int
		temps int
		comps int
		err   error
	}
	results := make(chan dayResult, progressDays)

	for i := 0; i < progressDays; i++ {
		start := todayStart.AddDate(0, 0, i-progressDays+1)
		end := start.AddDate(0, 0, 1)
		go func(idx int, start, end time.Time) {
			temps, err := uc.progressRepo.CountTemperaturesBetween(ctx, locationID, start, end)
			if err != nil {
				results <- dayResult{idx: idx, err: err}
				return
			}
			comps, err := uc.progressRepo.CountCompletionsBetween(ctx, locationID, start, end)
			results <- dayResult{idx: idx, temps: temps, comps: comps, err: err}
		}(i, start, end)
	}

	days := make([]dto.ProgressDay, progressDays)
	for i := 0; i < progressDays; i++ {
		r := <-results
		if r.err != nil {
			return nil, fmt.Errorf("progress: day counts: %w", r.err)
		}
		date := todayStart.AddDate(0, 0, r.idx-progressDays+1)
		days[r.idx] = dto.ProgressDay{
			Date:                date.Format("2006-01-02"),
			TemperatureLogs:     r.temps,
			ChecklistsCompleted: r.comps,
		}
	}
	return &dto.ProgressResponse{Days: days}, nil
}
