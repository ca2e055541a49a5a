package entity

import "time"

// ApplianceUnit is a fridge or freezer installed at a location.
type ApplianceUnit struct {
	ID         string
	LocationID string
	Name       string
	Type       string // TempFridge or TempFreezer
	CreatedAt  time.Time
}

// FoodItem is a dish or ingredient whose cooking temperature gets probed.
// Food items are shared across the company's locations.
type FoodItem struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}

// Supplier delivers goods to a location; delivery temperatures reference it.
type Supplier struct {
	ID         string
	LocationID string
	Name       string
	CreatedAt  time.Time
}
