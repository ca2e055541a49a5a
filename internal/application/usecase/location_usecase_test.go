package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/application/usecase"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
)

func TestLocationListVisible_AdminSeesWholeCompany(t *testing.T) {
	uc := usecase.NewLocationUseCase(twoLocations())

	resp, err := uc.ListVisible(context.Background(), adminScope(companyA), "")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

func TestLocationListVisible_ManagerSeesAssignedSubset(t *testing.T) {
	uc := usecase.NewLocationUseCase(twoLocations())

	resp, err := uc.ListVisible(context.Background(), managerScope(companyA, locationB), "")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, locationB, resp.Items[0].ID)
}

func TestLocationListVisible_ManagerEmptyAssignmentSeesNothing(t *testing.T) {
	uc := usecase.NewLocationUseCase(twoLocations())

	resp, err := uc.ListVisible(context.Background(), managerScope(companyA), "")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestLocationListVisible_StaleAssignmentFiltered(t *testing.T) {
	repo := newMemLocationRepo(
		&entity.Location{ID: locationA, CompanyID: companyA},
		&entity.Location{ID: locationB, CompanyID: companyB},
	)
	uc := usecase.NewLocationUseCase(repo)

	// assignment still names a location that moved to another company
	resp, err := uc.ListVisible(context.Background(), managerScope(companyA, locationA, locationB), "")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, locationA, resp.Items[0].ID)
}

func TestLocationCreate_OpsDenied(t *testing.T) {
	uc := usecase.NewLocationUseCase(newMemLocationRepo())

	_, err := uc.Create(context.Background(), opsScope(companyA), dto.CreateLocationRequest{Name: "New site"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLocationCreate_AdminDefaultsToOwnCompany(t *testing.T) {
	repo := newMemLocationRepo()
	uc := usecase.NewLocationUseCase(repo)

	resp, err := uc.Create(context.Background(), adminScope(companyA), dto.CreateLocationRequest{Name: "New site"})
	require.NoError(t, err)
	assert.Equal(t, companyA, resp.CompanyID)
}

func TestLocationDelete_CrossCompanyDenied(t *testing.T) {
	repo := newMemLocationRepo(&entity.Location{ID: locationA, CompanyID: companyB})
	uc := usecase.NewLocationUseCase(repo)

	err := uc.Delete(context.Background(), adminScope(companyA), locationA)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
