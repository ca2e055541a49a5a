package entity

import "time"

// Company is the tenant boundary: it owns locations and the profiles whose
// CompanyID matches.
type Company struct {
	ID          string
	Name        string
	Description string
	Address     string
	Phone       string
	Email       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
