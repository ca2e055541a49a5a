package entity

import "time"

// Location is a physical site (restaurant, kitchen, catering unit) owned by
// exactly one company. Temperature and checklist records are scoped to it.
type Location struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
