package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/safebite-api/internal/application/analytics"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
)

const (
	companyID  = "11111111-0000-0000-0000-000000000001"
	locationID = "11111111-1111-0000-0000-000000000001"
)

type stubLocationRepo struct {
	loc *entity.Location
}

func (r *stubLocationRepo) Create(context.Context, *entity.Location) error { return nil }
func (r *stubLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	if r.loc != nil && r.loc.ID == id {
		return r.loc, nil
	}
	return nil, nil
}
func (r *stubLocationRepo) Update(context.Context, *entity.Location) error { return nil }
func (r *stubLocationRepo) Delete(context.Context, string) error           { return nil }
func (r *stubLocationRepo) ListByCompany(context.Context, string) ([]*entity.Location, error) {
	return nil, nil
}
func (r *stubLocationRepo) ListByIDs(context.Context, []string) ([]*entity.Location, error) {
	return nil, nil
}

// stubProgressRepo serves fixed counts keyed by the day-start date.
type stubProgressRepo struct {
	temps map[string]int
	comps map[string]int
	err   error
}

func (r *stubProgressRepo) CountTemperaturesBetween(_ context.Context, _ string, start, _ time.Time) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.temps[start.Format("2006-01-02")], nil
}
func (r *stubProgressRepo) CountCompletionsBetween(_ context.Context, _ string, start, _ time.Time) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.comps[start.Format("2006-01-02")], nil
}

func opsScope() rbac.Scope {
	return rbac.Scope{Role: rbac.RoleOps, CompanyID: companyID}
}

func TestWeekSeries_SevenDaysOldestFirst(t *testing.T) {
	locs := &stubLocationRepo{loc: &entity.Location{ID: locationID, CompanyID: companyID}}
	todayStart, _ := entity.ServiceDay(time.Now())
	progress := &stubProgressRepo{
		temps: map[string]int{todayStart.Format("2006-01-02"): 4},
		comps: map[string]int{todayStart.AddDate(0, 0, -2).Format("2006-01-02"): 9},
	}
	uc := analytics.NewProgressUseCase(progress, locs)

	resp, err := uc.WeekSeries(context.Background(), opsScope(), locationID)
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	assert.Equal(t, todayStart.AddDate(0, 0, -6).Format("2006-01-02"), resp.Days[0].Date)
	assert.Equal(t, todayStart.Format("2006-01-02"), resp.Days[6].Date)
	assert.Equal(t, 4, resp.Days[6].TemperatureLogs)
	assert.Equal(t, 9, resp.Days[4].ChecklistsCompleted)
	assert.Zero(t, resp.Days[0].TemperatureLogs)
}

func TestWeekSeries_ManagerOutsideAssignmentDenied(t *testing.T) {
	locs := &stubLocationRepo{loc: &entity.Location{ID: locationID, CompanyID: companyID}}
	uc := analytics.NewProgressUseCase(&stubProgressRepo{}, locs)

	scope := rbac.Scope{Role: rbac.RoleManager, CompanyID: companyID, LocationIDs: []string{"other"}}
	_, err := uc.WeekSeries(context.Background(), scope, locationID)
	assert.ErrorIs(t, err, domain.ErrLocationDenied)
}

func TestWeekSeries_UnknownLocation(t *testing.T) {
	uc := analytics.NewProgressUseCase(&stubProgressRepo{}, &stubLocationRepo{})

	_, err := uc.WeekSeries(context.Background(), opsScope(), locationID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWeekSeries_CountErrorPropagates(t *testing.T) {
	locs := &stubLocationRepo{loc: &entity.Location{ID: locationID, CompanyID: companyID}}
	uc := analytics.NewProgressUseCase(&stubProgressRepo{err: errors.New("db down")}, locs)

	_, err := uc.WeekSeries(context.Background(), opsScope(), locationID)
	assert.ErrorContains(t, err, "db down")
}
