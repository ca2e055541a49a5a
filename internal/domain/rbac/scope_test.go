package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safebite/safebite-api/internal/domain/rbac"
)

const (
	companyA  = "11111111-1111-1111-1111-111111111111"
	companyB  = "22222222-2222-2222-2222-222222222222"
	locationX = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	locationY = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

func TestCanAccessCompany(t *testing.T) {
	super := rbac.Scope{Role: rbac.RoleSuperUser}
	assert.True(t, super.CanAccessCompany(companyA))
	assert.True(t, super.CanAccessCompany(companyB))

	admin := rbac.Scope{Role: rbac.RoleCompanyAdmin, CompanyID: companyA}
	assert.True(t, admin.CanAccessCompany(companyA))
	assert.False(t, admin.CanAccessCompany(companyB))

	// A non-super scope without a company binding sees nothing.
	unbound := rbac.Scope{Role: rbac.RoleOps}
	assert.False(t, unbound.CanAccessCompany(companyA))
	assert.False(t, unbound.CanAccessCompany(""))
}

func TestCanAccessLocation_CompanyWideRoles(t *testing.T) {
	for _, role := range []rbac.Role{rbac.RoleCompanyAdmin, rbac.RoleOps} {
		s := rbac.Scope{Role: role, CompanyID: companyA}
		assert.True(t, s.CanAccessLocation(companyA, locationX),
			"%s sees every location of its company", role)
		assert.False(t, s.CanAccessLocation(companyB, locationX),
			"%s must not cross the company boundary", role)
	}
}

func TestCanAccessLocation_ManagerSubset(t *testing.T) {
	s := rbac.Scope{Role: rbac.RoleManager, CompanyID: companyA, LocationIDs: []string{locationX}}
	assert.True(t, s.CanAccessLocation(companyA, locationX))
	assert.False(t, s.CanAccessLocation(companyA, locationY),
		"manager must never see a location outside its assignment")
	assert.False(t, s.CanAccessLocation(companyB, locationX))
}

func TestCanAccessLocation_ManagerWithEmptyAssignmentSeesNothing(t *testing.T) {
	s := rbac.Scope{Role: rbac.RoleManager, CompanyID: companyA}
	assert.False(t, s.CanAccessLocation(companyA, locationX))
	assert.False(t, s.CanAccessLocation(companyA, locationY))
	assert.Empty(t, s.VisibleLocationIDs(companyA, []string{locationX, locationY}),
		"empty assignment must not fall back to all locations")
}

func TestCanAccessLocation_SuperUserUnconditional(t *testing.T) {
	s := rbac.Scope{Role: rbac.RoleSuperUser}
	assert.True(t, s.CanAccessLocation(companyA, locationX))
	assert.True(t, s.CanAccessLocation(companyB, locationY))
}

func TestCanPerformAction_SuperUserAlwaysAllowed(t *testing.T) {
	s := rbac.Scope{Role: rbac.RoleSuperUser}
	for _, company := range []string{companyA, companyB, ""} {
		for _, action := range []rbac.Action{rbac.ActionView, rbac.ActionEdit, rbac.ActionDelete} {
			assert.True(t, s.CanPerformAction(company, action))
		}
	}
}

func TestCanPerformAction_CompanyBoundary(t *testing.T) {
	for _, role := range []rbac.Role{rbac.RoleCompanyAdmin, rbac.RoleOps, rbac.RoleManager} {
		s := rbac.Scope{Role: role, CompanyID: companyA}
		assert.False(t, s.CanPerformAction(companyB, rbac.ActionView),
			"%s must not view records of another company", role)
	}
}

func TestCanPerformAction_PerRoleMatrix(t *testing.T) {
	admin := rbac.Scope{Role: rbac.RoleCompanyAdmin, CompanyID: companyA}
	assert.True(t, admin.CanPerformAction(companyA, rbac.ActionView))
	assert.True(t, admin.CanPerformAction(companyA, rbac.ActionEdit))
	assert.True(t, admin.CanPerformAction(companyA, rbac.ActionDelete))

	ops := rbac.Scope{Role: rbac.RoleOps, CompanyID: companyA}
	assert.True(t, ops.CanPerformAction(companyA, rbac.ActionView))
	assert.True(t, ops.CanPerformAction(companyA, rbac.ActionEdit))
	assert.False(t, ops.CanPerformAction(companyA, rbac.ActionDelete),
		"ops may edit but never delete")

	manager := rbac.Scope{Role: rbac.RoleManager, CompanyID: companyA}
	assert.True(t, manager.CanPerformAction(companyA, rbac.ActionView))
	assert.False(t, manager.CanPerformAction(companyA, rbac.ActionEdit))
	assert.False(t, manager.CanPerformAction(companyA, rbac.ActionDelete))
}

func TestCanPerformAction_UnknownInputsDeny(t *testing.T) {
	s := rbac.Scope{Role: rbac.RoleCompanyAdmin, CompanyID: companyA}
	assert.False(t, s.CanPerformAction(companyA, rbac.Action("purge")))
	assert.False(t, s.CanPerformAction(companyA, rbac.Action("")))

	unknown := rbac.Scope{Role: rbac.Role("owner"), CompanyID: companyA}
	assert.False(t, unknown.CanPerformAction(companyA, rbac.ActionView))
}

func TestVisibleLocationIDs(t *testing.T) {
	s := rbac.Scope{Role: rbac.RoleManager, CompanyID: companyA, LocationIDs: []string{locationY}}
	got := s.VisibleLocationIDs(companyA, []string{locationX, locationY})
	assert.Equal(t, []string{locationY}, got)

	ops := rbac.Scope{Role: rbac.RoleOps, CompanyID: companyA}
	assert.Equal(t, []string{locationX, locationY},
		ops.VisibleLocationIDs(companyA, []string{locationX, locationY}))
}
