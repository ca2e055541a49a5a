// Package rbac holds the role and permission model for the multi-tenant
// hierarchy: companies own locations, users belong to a company and hold one
// of four roles. The permission table is constant data built once at init;
// every lookup is a pure map read and every unknown input denies.
package rbac

// Role is one of the closed set of user roles, ordered by privilege.
type Role string

const (
	RoleSuperUser    Role = "super_user"    // global scope, all companies
	RoleCompanyAdmin Role = "company_admin" // full control within one company
	RoleOps          Role = "ops"           // operational staff, all company locations
	RoleManager      Role = "manager"       // restricted to assigned locations
)

// AllRoles returns the closed role set in descending privilege order.
func AllRoles() []Role {
	return []Role{RoleSuperUser, RoleCompanyAdmin, RoleOps, RoleManager}
}

// Valid reports whether r is part of the closed role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperUser, RoleCompanyAdmin, RoleOps, RoleManager:
		return true
	}
	return false
}

// DisplayName returns the human-readable role name.
func (r Role) DisplayName() string {
	switch r {
	case RoleSuperUser:
		return "App Super User"
	case RoleCompanyAdmin:
		return "Company Admin"
	case RoleOps:
		return "Operations Manager"
	case RoleManager:
		return "Manager"
	}
	return string(r)
}

// Capability names the fixed set of permissions a role may hold.
type Capability string

const (
	CapViewAllCompanies   Capability = "canViewAllCompanies"
	CapViewAllLocations   Capability = "canViewAllLocations"
	CapCreateCompanies    Capability = "canCreateCompanies"
	CapManageUsers        Capability = "canManageUsers"
	CapCreateChecklists   Capability = "canCreateChecklists"
	CapEditChecklists     Capability = "canEditChecklists"
	CapDeleteChecklists   Capability = "canDeleteChecklists"
	CapRecordTemperatures Capability = "canRecordTemperatures"
	CapCompleteChecklists Capability = "canCompleteChecklists"
	CapViewAllRecords     Capability = "canViewAllRecords"
	CapDownloadRecords    Capability = "canDownloadRecords"
	CapGenerateReports    Capability = "canGenerateReports"
	CapManageRoles        Capability = "canManageRoles"
)

// permissions is the constant role -> capability table. Capabilities absent
// from a role's set are denied; there is no dynamic policy evaluation.
var permissions = map[Role]map[Capability]bool{
	RoleSuperUser: {
		CapViewAllCompanies:   true,
		CapViewAllLocations:   true,
		CapCreateCompanies:    true,
		CapManageUsers:        true,
		CapCreateChecklists:   true,
		CapEditChecklists:     true,
		CapDeleteChecklists:   true,
		CapRecordTemperatures: true,
		CapCompleteChecklists: true,
		CapViewAllRecords:     true,
		CapDownloadRecords:    true,
		CapGenerateReports:    true,
		CapManageRoles:        true,
	},
	RoleCompanyAdmin: {
		CapViewAllLocations:   true,
		CapManageUsers:        true,
		CapCreateChecklists:   true,
		CapEditChecklists:     true,
		CapDeleteChecklists:   true,
		CapRecordTemperatures: true,
		CapCompleteChecklists: true,
		CapViewAllRecords:     true,
		CapDownloadRecords:    true,
		CapGenerateReports:    true,
	},
	RoleOps: {
		CapViewAllLocations:   true,
		CapRecordTemperatures: true,
		CapCompleteChecklists: true,
		CapViewAllRecords:     true,
		CapDownloadRecords:    true,
	},
	RoleManager: {
		CapRecordTemperatures: true,
		CapCompleteChecklists: true,
		CapViewAllRecords:     true,
		CapDownloadRecords:    true,
	},
}

// Allows reports whether the role holds the capability.
// Unknown roles and unknown capabilities always deny; never panics.
func Allows(role Role, cap Capability) bool {
	return permissions[role][cap]
}

// assignable maps a role to the roles it may create, edit or delete.
var assignable = map[Role][]Role{
	RoleSuperUser:    {RoleSuperUser, RoleCompanyAdmin, RoleOps, RoleManager},
	RoleCompanyAdmin: {RoleOps, RoleManager},
}

// CanManageRole reports whether manager may assign or modify target.
func CanManageRole(manager, target Role) bool {
	for _, r := range assignable[manager] {
		if r == target {
			return true
		}
	}
	return false
}

// AssignableRoles returns the roles a user may hand out. Empty for roles
// without user management rights.
func AssignableRoles(role Role) []Role {
	rs := assignable[role]
	out := make([]Role, len(rs))
	copy(out, rs)
	return out
}
