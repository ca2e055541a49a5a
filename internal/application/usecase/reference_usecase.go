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

// ReferenceUseCase manages the dropdown data the logging screens feed from:
// appliance units and suppliers per location, food items per company.
// Mutations follow the record-action matrix, so managers can read the lists
// but not change them.
type ReferenceUseCase struct {
	refRepo      repository.ReferenceRepository
	locationRepo repository.LocationRepository
}

func NewReferenceUseCase(refRepo repository.ReferenceRepository, locationRepo repository.LocationRepository) *ReferenceUseCase {
	return &ReferenceUseCase{refRepo: refRepo, locationRepo: locationRepo}
}

// locationCompany resolves a location and checks the scope can see it.
func (uc *ReferenceUseCase) locationCompany(ctx context.Context, scope rbac.Scope, locationID string) (string, error) {
	loc, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return "", err
	}
	if loc == nil {
		return "", domain.ErrNotFound
	}
	if !scope.CanAccessLocation(loc.CompanyID, loc.ID) {
		return "", domain.ErrLocationDenied
	}
	return loc.CompanyID, nil
}

// CreateUnit registers a fridge or freezer at a location.
func (uc *ReferenceUseCase) CreateUnit(ctx context.Context, scope rbac.Scope, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.Type != entity.TempFridge && in.Type != entity.TempFreezer {
		return nil, domain.ErrInvalidInput
	}
	companyID, err := uc.locationCompany(ctx, scope, in.LocationID)
	if err != nil {
		return nil, err
	}
	if !scope.CanPerformAction(companyID, rbac.ActionEdit) {
		return nil, domain.ErrForbidden
	}
	unit := &entity.ApplianceUnit{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		Name:       in.Name,
		Type:       in.Type,
		CreatedAt:  time.Now(),
	}
	if err := uc.refRepo.CreateUnit(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// ListUnits returns the appliances at a location.
func (uc *ReferenceUseCase) ListUnits(ctx context.Context, scope rbac.Scope, locationID string) ([]dto.UnitResponse, error) {
	if _, err := uc.locationCompany(ctx, scope, locationID); err != nil {
		return nil, err
	}
	units, err := uc.refRepo.ListUnitsByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, *toUnitResponse(u))
	}
	return out, nil
}

// DeleteUnit removes an appliance from a location.
func (uc *ReferenceUseCase) DeleteUnit(ctx context.Context, scope rbac.Scope, locationID, id string) error {
	companyID, err := uc.locationCompany(ctx, scope, locationID)
	if err != nil {
		return err
	}
	if !scope.CanPerformAction(companyID, rbac.ActionDelete) {
		return domain.ErrForbidden
	}
	return uc.refRepo.DeleteUnit(ctx, id)
}

// CreateFoodItem adds a probe-able dish shared across the company.
func (uc *ReferenceUseCase) CreateFoodItem(ctx context.Context, scope rbac.Scope, companyID string, in dto.CreateFoodItemRequest) (*dto.FoodItemResponse, error) {
	if companyID == "" {
		companyID = scope.CompanyID
	}
	if !scope.CanAccessCompany(companyID) || !scope.CanPerformAction(companyID, rbac.ActionEdit) {
		return nil, domain.ErrForbidden
	}
	item := &entity.FoodItem{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.refRepo.CreateFoodItem(ctx, item); err != nil {
		return nil, err
	}
	return toFoodItemResponse(item), nil
}

// ListFoodItems returns the company's food items.
func (uc *ReferenceUseCase) ListFoodItems(ctx context.Context, scope rbac.Scope, companyID string) ([]dto.FoodItemResponse, error) {
	if companyID == "" {
		companyID = scope.CompanyID
	}
	if !scope.CanAccessCompany(companyID) {
		return nil, domain.ErrForbidden
	}
	items, err := uc.refRepo.ListFoodItemsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FoodItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toFoodItemResponse(it))
	}
	return out, nil
}

// DeleteFoodItem removes a food item from the company catalogue.
func (uc *ReferenceUseCase) DeleteFoodItem(ctx context.Context, scope rbac.Scope, companyID, id string) error {
	if companyID == "" {
		companyID = scope.CompanyID
	}
	if !scope.CanAccessCompany(companyID) || !scope.CanPerformAction(companyID, rbac.ActionDelete) {
		return domain.ErrForbidden
	}
	return uc.refRepo.DeleteFoodItem(ctx, id)
}

// CreateSupplier registers a delivery supplier at a location.
func (uc *ReferenceUseCase) CreateSupplier(ctx context.Context, scope rbac.Scope, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	companyID, err := uc.locationCompany(ctx, scope, in.LocationID)
	if err != nil {
		return nil, err
	}
	if !scope.CanPerformAction(companyID, rbac.ActionEdit) {
		return nil, domain.ErrForbidden
	}
	sup := &entity.Supplier{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		Name:       in.Name,
		CreatedAt:  time.Now(),
	}
	if err := uc.refRepo.CreateSupplier(ctx, sup); err != nil {
		return nil, err
	}
	return toSupplierResponse(sup), nil
}

// ListSuppliers returns the suppliers delivering to a location.
func (uc *ReferenceUseCase) ListSuppliers(ctx context.Context, scope rbac.Scope, locationID string) ([]dto.SupplierResponse, error) {
	if _, err := uc.locationCompany(ctx, scope, locationID); err != nil {
		return nil, err
	}
	sups, err := uc.refRepo.ListSuppliersByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(sups))
	for _, s := range sups {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// DeleteSupplier removes a supplier from a location.
func (uc *ReferenceUseCase) DeleteSupplier(ctx context.Context, scope rbac.Scope, locationID, id string) error {
	companyID, err := uc.locationCompany(ctx, scope, locationID)
	if err != nil {
		return err
	}
	if !scope.CanPerformAction(companyID, rbac.ActionDelete) {
		return domain.ErrForbidden
	}
	return uc.refRepo.DeleteSupplier(ctx, id)
}

func toUnitResponse(u *entity.ApplianceUnit) *dto.UnitResponse {
	return &dto.UnitResponse{ID: u.ID, LocationID: u.LocationID, Name: u.Name, Type: u.Type, CreatedAt: u.CreatedAt}
}

func toFoodItemResponse(it *entity.FoodItem) *dto.FoodItemResponse {
	return &dto.FoodItemResponse{ID: it.ID, CompanyID: it.CompanyID, Name: it.Name, CreatedAt: it.CreatedAt}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{ID: s.ID, LocationID: s.LocationID, Name: s.Name, CreatedAt: s.CreatedAt}
}
