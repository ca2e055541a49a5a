package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

// LocationUseCase site management and scope-filtered visibility.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase builds the use case with its persistence port.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// canManageSites reports whether the scope administers locations of the
// company: super users anywhere, company admins within their own tenant.
func canManageSites(scope rbac.Scope, companyID string) bool {
	if scope.Role == rbac.RoleSuperUser {
		return true
	}
	return scope.Role == rbac.RoleCompanyAdmin && scope.CanAccessCompany(companyID)
}

// Create adds a site to a company. A company admin's request may omit the
// company id, which then defaults to their own tenant.
func (uc *LocationUseCase) Create(ctx context.Context, scope rbac.Scope, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	companyID := in.CompanyID
	if companyID == "" {
		companyID = scope.CompanyID
	}
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !canManageSites(scope, companyID) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	loc := &entity.Location{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// GetByID returns a site the caller's scope may see.
func (uc *LocationUseCase) GetByID(ctx context.Context, scope rbac.Scope, id string) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	if !scope.CanAccessLocation(loc.CompanyID, loc.ID) {
		return nil, domain.ErrForbidden
	}
	return toLocationResponse(loc), nil
}

// ListVisible returns the sites of a company the caller may see. Company
// admins and ops get the whole company; a manager gets exactly its assigned
// subset, and an empty assignment yields an empty list, never a fallback.
func (uc *LocationUseCase) ListVisible(ctx context.Context, scope rbac.Scope, companyID string) (*dto.LocationListResponse, error) {
	if companyID == "" {
		companyID = scope.CompanyID
	}
	if !scope.CanAccessCompany(companyID) {
		return nil, domain.ErrForbidden
	}

	var (
		locs []*entity.Location
		err  error
	)
	if scope.Role == rbac.RoleManager {
		if len(scope.LocationIDs) == 0 {
			return &dto.LocationListResponse{Items: []dto.LocationResponse{}}, nil
		}
		locs, err = uc.repo.ListByIDs(ctx, scope.LocationIDs)
	} else {
		locs, err = uc.repo.ListByCompany(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.LocationResponse, 0, len(locs))
	for _, l := range locs {
		// ListByIDs can return stale assignments pointing at another
		// company; re-check each row against the scope.
		if !scope.CanAccessLocation(l.CompanyID, l.ID) || l.CompanyID != companyID {
			continue
		}
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items}, nil
}

// Update edits a site.
func (uc *LocationUseCase) Update(ctx context.Context, scope rbac.Scope, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if !canManageSites(scope, loc.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		loc.Name = *in.Name
	}
	if in.Address != nil {
		loc.Address = *in.Address
	}
	if in.Phone != nil {
		loc.Phone = *in.Phone
	}
	loc.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// Delete removes a site and its records.
func (uc *LocationUseCase) Delete(ctx context.Context, scope rbac.Scope, id string) error {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	if !canManageSites(scope, loc.CompanyID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		CompanyID: l.CompanyID,
		Name:      l.Name,
		Address:   l.Address,
		Phone:     l.Phone,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
