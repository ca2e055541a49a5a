package repository

import (
	"context"

	"github.com/safebite/safebite-api/internal/domain/entity"
)

// ReferenceRepository is the persistence port for the dropdown data a
// location carries: appliance units, food items and suppliers.
type ReferenceRepository interface {
	CreateUnit(ctx context.Context, unit *entity.ApplianceUnit) error
	ListUnitsByLocation(ctx context.Context, locationID string) ([]*entity.ApplianceUnit, error)
	DeleteUnit(ctx context.Context, id string) error

	CreateFoodItem(ctx context.Context, item *entity.FoodItem) error
	ListFoodItemsByCompany(ctx context.Context, companyID string) ([]*entity.FoodItem, error)
	DeleteFoodItem(ctx context.Context, id string) error

	CreateSupplier(ctx context.Context, supplier *entity.Supplier) error
	ListSuppliersByLocation(ctx context.Context, locationID string) ([]*entity.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}
