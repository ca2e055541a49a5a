package dto

import "time"

// RegisterRequest self-service signup. New signups always land as manager
// with no locations until an admin assigns them.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FullName  string `json:"full_name" validate:"required,max=200"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// CreateUserRequest admin-side provisioning (role and locations explicit).
type CreateUserRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FullName    string   `json:"full_name" validate:"required,max=200"`
	CompanyID   string   `json:"company_id" validate:"omitempty,uuid"`
	Role        string   `json:"role" validate:"required,oneof=super_user company_admin ops manager"`
	LocationIDs []string `json:"location_ids"`
}

// UpdateUserRequest admin-side edit; nil fields are left untouched.
type UpdateUserRequest struct {
	FullName    *string   `json:"full_name"`
	Role        *string   `json:"role"`
	LocationIDs *[]string `json:"location_ids"`
	Status      *string   `json:"status"`
}

// UserResponse a profile without its password hash.
type UserResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id,omitempty"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	RoleDisplay string    `json:"role_display"`
	LocationIDs []string  `json:"location_ids"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserListResponse paged profile listing.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse signed token plus the authenticated profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
