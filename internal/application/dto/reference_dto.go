package dto

import "time"

// CreateUnitRequest a fridge or freezer at a location.
type CreateUnitRequest struct {
	LocationID string `json:"location_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,max=200"`
	Type       string `json:"type" validate:"required,oneof=fridge freezer"`
}

// UnitResponse an appliance unit.
type UnitResponse struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateFoodItemRequest a probe-able dish shared across the company.
type CreateFoodItemRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// FoodItemResponse a food item.
type FoodItemResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSupplierRequest a delivery supplier for a location.
type CreateSupplierRequest struct {
	LocationID string `json:"location_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,max=200"`
}

// SupplierResponse a supplier.
type SupplierResponse struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
