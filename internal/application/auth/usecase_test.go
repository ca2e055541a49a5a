package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/safebite/safebite-api/internal/application/auth"
	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}
func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}
func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}
func (r *memUserRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUserRepo) ListAll(_ context.Context, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}
func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *memCompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}
func (r *memCompanyRepo) Delete(_ context.Context, id string) error {
	delete(r.companies, id)
	return nil
}
func (r *memCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

type memRevoker struct {
	revoked map[string]time.Time
}

func newMemRevoker() *memRevoker { return &memRevoker{revoked: map[string]time.Time{}} }

func (r *memRevoker) Revoke(_ context.Context, tokenID string, until time.Time) error {
	r.revoked[tokenID] = until
	return nil
}
func (r *memRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

const testCompanyID = "33333333-3333-3333-3333-333333333333"

func setupAuth(t *testing.T) (*auth.AuthUseCase, *memUserRepo, *memRevoker) {
	t.Helper()
	users := newMemUserRepo()
	companies := newMemCompanyRepo()
	companies.companies[testCompanyID] = &entity.Company{ID: testCompanyID, Name: "La Mia Mamma", IsActive: true}
	revoker := newMemRevoker()
	uc := auth.NewAuthUseCase(users, companies, revoker, auth.JWTConfig{
		Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "safebite-test",
	})
	return uc, users, revoker
}

func TestRegister_DefaultsToManagerWithNoLocations(t *testing.T) {
	uc, users, _ := setupAuth(t)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:     "chef@lamiamamma.co.uk",
		Password:  "correct-horse-battery",
		FullName:  "Head Chef",
		CompanyID: testCompanyID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(rbac.RoleManager), out.Role)
	assert.Empty(t, out.LocationIDs, "a fresh signup sees no locations until assigned")

	stored := users.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash, "password must be hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse-battery")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _ := setupAuth(t)
	in := dto.RegisterRequest{
		Email: "dup@example.com", Password: "password123", FullName: "Dup", CompanyID: testCompanyID,
	}
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_UnknownCompany(t *testing.T) {
	uc, _, _ := setupAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "x@example.com", Password: "password123", FullName: "X",
		CompanyID: "99999999-9999-9999-9999-999999999999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_Success(t *testing.T) {
	uc, _, _ := setupAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ops@example.com", Password: "password123", FullName: "Ops", CompanyID: testCompanyID,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ops@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ops@example.com", out.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _, _ := setupAuth(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ops@example.com", Password: "password123", FullName: "Ops", CompanyID: testCompanyID,
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ops@example.com", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc, _, _ := setupAuth(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_SuspendedUser(t *testing.T) {
	uc, users, _ := setupAuth(t)
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "gone@example.com", Password: "password123", FullName: "Gone", CompanyID: testCompanyID,
	})
	require.NoError(t, err)
	users.users[out.ID].Status = "suspended"

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "gone@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogout_RevokesToken(t *testing.T) {
	uc, _, revoker := setupAuth(t)
	exp := time.Now().Add(time.Hour)

	require.NoError(t, uc.Logout(context.Background(), "token-jti", exp))
	revoked, err := revoker.IsRevoked(context.Background(), "token-jti")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogout_EmptyTokenID(t *testing.T) {
	uc, _, _ := setupAuth(t)
	err := uc.Logout(context.Background(), "", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
