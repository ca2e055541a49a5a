package entity

import (
	"time"

	"github.com/safebite/safebite-api/internal/domain/rbac"
)

// User represents a staff profile. Every user belongs to a company except
// super users, whose CompanyID is empty (global scope).
type User struct {
	ID           string
	CompanyID    string // empty only for role super_user
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	FullName     string
	Role         rbac.Role
	LocationIDs  []string // locations a manager may act on; ignored for other roles
	Status       string   // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanActDirectly reports whether the profile is usable for scoped operations:
// super users have no company binding, everyone else needs one.
func (u *User) CanActDirectly() bool {
	if u == nil {
		return false
	}
	return u.Role == rbac.RoleSuperUser || u.CompanyID != ""
}
