package repository

import (
	"context"

	"github.com/safebite/safebite-api/internal/domain/entity"
)

// UserRepository is the persistence port for staff profiles.
// Lookups return (nil, nil) when the row does not exist.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
	ListAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
