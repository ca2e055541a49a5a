package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordTemperatureRequest one probe reading. The reference id that applies
// depends on Type: unit for fridge/freezer, food item for food, supplier for
// delivery.
type RecordTemperatureRequest struct {
	LocationID string          `json:"location_id" validate:"required,uuid"`
	Type       string          `json:"type" validate:"required,oneof=fridge freezer food delivery"`
	Value      decimal.Decimal `json:"value"`
	UnitID     string          `json:"unit_id"`
	FoodItemID string          `json:"food_item_id"`
	SupplierID string          `json:"supplier_id"`
}

// CorrectiveActionRequest note attached to an unsafe reading.
type CorrectiveActionRequest struct {
	Note string `json:"note" validate:"required"`
}

// TemperatureResponse a reading with its safety classification.
type TemperatureResponse struct {
	ID               string          `json:"id"`
	LocationID       string          `json:"location_id"`
	Type             string          `json:"type"`
	Value            decimal.Decimal `json:"value"`
	UnitID           string          `json:"unit_id,omitempty"`
	FoodItemID       string          `json:"food_item_id,omitempty"`
	SupplierID       string          `json:"supplier_id,omitempty"`
	OutOfRange       bool            `json:"out_of_range"`
	CorrectiveAction string          `json:"corrective_action,omitempty"`
	RecordedBy       string          `json:"recorded_by"`
	RecordedAt       time.Time       `json:"recorded_at"`
}

// TemperatureListResponse the current service day's readings for a location.
type TemperatureListResponse struct {
	Items    []TemperatureResponse `json:"items"`
	DayStart time.Time             `json:"day_start"`
	DayEnd   time.Time             `json:"day_end"`
}
