package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/safebite/safebite-api/internal/application/auth"
	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

// UserUseCase admin-side user provisioning. Every mutation double-checks the
// role-assignment hierarchy: nobody hands out a role they cannot manage.
type UserUseCase struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(userRepo repository.UserRepository, locationRepo repository.LocationRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, locationRepo: locationRepo}
}

// Create provisions a profile. Requires the manage-users capability; the
// target role must be assignable by the caller, and a company admin can only
// provision into their own tenant. Manager location assignments are verified
// to belong to the target company.
func (uc *UserUseCase) Create(ctx context.Context, scope rbac.Scope, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapManageUsers) {
		return nil, domain.ErrForbidden
	}
	role := rbac.Role(in.Role)
	if !role.Valid() || !rbac.CanManageRole(scope.Role, role) {
		return nil, domain.ErrForbidden
	}

	companyID := in.CompanyID
	if companyID == "" && role != rbac.RoleSuperUser {
		companyID = scope.CompanyID
	}
	if role != rbac.RoleSuperUser && companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if role == rbac.RoleSuperUser {
		companyID = "" // super users carry no tenant binding
	} else if !scope.CanAccessCompany(companyID) {
		return nil, domain.ErrForbidden
	}

	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	locationIDs := []string{}
	if role == rbac.RoleManager && len(in.LocationIDs) > 0 {
		if err := uc.verifyLocations(ctx, companyID, in.LocationIDs); err != nil {
			return nil, err
		}
		locationIDs = in.LocationIDs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         role,
		LocationIDs:  locationIDs,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update edits a profile. The caller must be able to manage both the
// profile's current role and, when changing it, the new role.
func (uc *UserUseCase) Update(ctx context.Context, scope rbac.Scope, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.authorizeManage(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if in.Role != nil {
		newRole := rbac.Role(*in.Role)
		if !newRole.Valid() || !rbac.CanManageRole(scope.Role, newRole) {
			return nil, domain.ErrForbidden
		}
		user.Role = newRole
		if newRole != rbac.RoleManager {
			user.LocationIDs = []string{}
		}
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Status != nil {
		switch *in.Status {
		case "active", "inactive", "suspended":
			user.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.LocationIDs != nil {
		if user.Role != rbac.RoleManager {
			return nil, domain.ErrInvalidInput
		}
		if len(*in.LocationIDs) > 0 {
			if err := uc.verifyLocations(ctx, user.CompanyID, *in.LocationIDs); err != nil {
				return nil, err
			}
		}
		user.LocationIDs = *in.LocationIDs
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete removes a profile. Self-deletion is refused.
func (uc *UserUseCase) Delete(ctx context.Context, scope rbac.Scope, callerID, id string) error {
	if callerID == id {
		return domain.ErrConflict
	}
	if _, err := uc.authorizeManage(ctx, scope, id); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, id)
}

// List returns profiles visible to the caller: all companies for a super
// user, their own tenant for a company admin.
func (uc *UserUseCase) List(ctx context.Context, scope rbac.Scope, companyID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapManageUsers) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()

	var (
		users []*entity.User
		err   error
	)
	switch {
	case companyID != "":
		if !scope.CanAccessCompany(companyID) {
			return nil, domain.ErrForbidden
		}
		users, err = uc.userRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	case scope.Role == rbac.RoleSuperUser:
		users, err = uc.userRepo.ListAll(ctx, page.Limit, page.Offset)
	default:
		users, err = uc.userRepo.ListByCompany(ctx, scope.CompanyID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// AssignableRoles returns the roles the caller may hand out, for the admin
// role dropdown.
func (uc *UserUseCase) AssignableRoles(scope rbac.Scope) []string {
	roles := rbac.AssignableRoles(scope.Role)
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// authorizeManage loads the target profile and verifies the caller may
// manage it: manage-users capability, same tenant (unless super user) and a
// manageable role.
func (uc *UserUseCase) authorizeManage(ctx context.Context, scope rbac.Scope, id string) (*entity.User, error) {
	if !rbac.Allows(scope.Role, rbac.CapManageUsers) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role == rbac.RoleSuperUser {
		if scope.Role != rbac.RoleSuperUser {
			return nil, domain.ErrForbidden
		}
	} else if !scope.CanAccessCompany(user.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if !rbac.CanManageRole(scope.Role, user.Role) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// verifyLocations checks that every id names a location of the company.
func (uc *UserUseCase) verifyLocations(ctx context.Context, companyID string, ids []string) error {
	locs, err := uc.locationRepo.ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Location, len(locs))
	for _, l := range locs {
		byID[l.ID] = l
	}
	for _, id := range ids {
		loc, ok := byID[id]
		if !ok || loc.CompanyID != companyID {
			return domain.ErrLocationDenied
		}
	}
	return nil
}
