package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Temperature reading types.
const (
	TempFridge   = "fridge"
	TempFreezer  = "freezer"
	TempFood     = "food"
	TempDelivery = "delivery"
)

// TemperatureRecord is one probe reading at a location. Exactly one of
// UnitID, FoodItemID, SupplierID is set, depending on Type. OutOfRange is
// classified at write time so historical rows keep the rule that applied
// when they were logged.
type TemperatureRecord struct {
	ID               string
	LocationID       string
	Type             string
	Value            decimal.Decimal // degrees Celsius
	UnitID           string          // fridge / freezer readings
	FoodItemID       string          // food readings
	SupplierID       string          // delivery readings
	OutOfRange       bool
	CorrectiveAction string // free-text note, required follow-up for unsafe readings
	RecordedBy       string // user id
	RecordedAt       time.Time
}

// Safe storage and serving thresholds in °C. Fridges hold 0–5, freezers
// −25 to −15, hot-held food must reach 75, deliveries must arrive at 5 or
// below.
var (
	fridgeMin  = decimal.NewFromInt(0)
	fridgeMax  = decimal.NewFromInt(5)
	freezerMin = decimal.NewFromInt(-25)
	freezerMax = decimal.NewFromInt(-15)
	foodMin    = decimal.NewFromInt(75)
	deliverMax = decimal.NewFromInt(5)
)

// IsUnsafeTemperature reports whether a reading of the given type falls
// outside the safe range. Unknown types are not classified as unsafe; they
// are rejected earlier by input validation.
func IsUnsafeTemperature(tempType string, value decimal.Decimal) bool {
	switch tempType {
	case TempFridge:
		return value.LessThan(fridgeMin) || value.GreaterThan(fridgeMax)
	case TempFreezer:
		return value.LessThan(freezerMin) || value.GreaterThan(freezerMax)
	case TempFood:
		return value.LessThan(foodMin)
	case TempDelivery:
		return value.GreaterThan(deliverMax)
	}
	return false
}

// ValidTemperatureType reports whether t is one of the closed reading types.
func ValidTemperatureType(t string) bool {
	switch t {
	case TempFridge, TempFreezer, TempFood, TempDelivery:
		return true
	}
	return false
}

// ServiceDay returns the start and end of the service day containing ts.
// The kitchen day runs 02:00 to 02:00: anything logged before 2am belongs to
// the previous day's sheet.
func ServiceDay(ts time.Time) (start, end time.Time) {
	day := ts
	if ts.Hour() < 2 {
		day = ts.AddDate(0, 0, -1)
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), 2, 0, 0, 0, ts.Location())
	return start, start.AddDate(0, 0, 1)
}
