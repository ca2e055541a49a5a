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

// CompanyUseCase tenant management. Creation and deletion are super-user
// operations; visibility follows the caller's scope.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case with its persistence port.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registers a new tenant. Requires the create-companies capability.
// Returns domain.ErrDuplicate when the name is taken.
func (uc *CompanyUseCase) Create(ctx context.Context, scope rbac.Scope, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapCreateCompanies) {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID returns a tenant the caller may see.
func (uc *CompanyUseCase) GetByID(ctx context.Context, scope rbac.Scope, id string) (*dto.CompanyResponse, error) {
	if !scope.CanAccessCompany(id) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List returns the tenants visible to the caller: every tenant for a super
// user, exactly their own for everyone else.
func (uc *CompanyUseCase) List(ctx context.Context, scope rbac.Scope, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	if rbac.Allows(scope.Role, rbac.CapViewAllCompanies) {
		list, err := uc.repo.List(ctx, page.Limit, page.Offset)
		if err != nil {
			return nil, err
		}
		items := make([]dto.CompanyResponse, 0, len(list))
		for _, c := range list {
			items = append(items, *toCompanyResponse(c))
		}
		return &dto.CompanyListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
	}

	if scope.CompanyID == "" {
		return &dto.CompanyListResponse{Items: []dto.CompanyResponse{}, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
	}
	company, err := uc.repo.GetByID(ctx, scope.CompanyID)
	if err != nil {
		return nil, err
	}
	items := []dto.CompanyResponse{}
	if company != nil {
		items = append(items, *toCompanyResponse(company))
	}
	return &dto.CompanyListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Update edits a tenant. Super users may edit any; a company admin only its
// own (and may not flip IsActive on itself; suspension is a super-user
// action).
func (uc *CompanyUseCase) Update(ctx context.Context, scope rbac.Scope, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !scope.CanPerformAction(id, rbac.ActionEdit) {
		return nil, domain.ErrForbidden
	}
	if in.IsActive != nil && scope.Role != rbac.RoleSuperUser {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Description != nil {
		company.Description = *in.Description
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete removes a tenant and everything under it. Super user only.
func (uc *CompanyUseCase) Delete(ctx context.Context, scope rbac.Scope, id string) error {
	if !rbac.Allows(scope.Role, rbac.CapCreateCompanies) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
