package rbac

// Action is a record-level operation checked by CanPerformAction.
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Scope is a user's tenant binding: the company it belongs to and, for
// managers, the explicit set of locations it may act on. A super user's
// scope may have an empty CompanyID.
type Scope struct {
	Role        Role
	CompanyID   string
	LocationIDs []string
}

// CanAccessCompany reports whether the scope may see the target company.
// Super users see every company; everyone else only their own.
func (s Scope) CanAccessCompany(companyID string) bool {
	if s.Role == RoleSuperUser {
		return true
	}
	return s.CompanyID != "" && s.CompanyID == companyID
}

// CanAccessLocation decides location visibility given the location's owning
// company. Company admins and ops see every location of their company;
// managers only locations explicitly assigned to them. A manager with an
// empty assignment sees no locations at all; there is no fallback to
// "first location" or "whole company".
func (s Scope) CanAccessLocation(companyID, locationID string) bool {
	if !s.CanAccessCompany(companyID) {
		return false
	}
	switch s.Role {
	case RoleSuperUser, RoleCompanyAdmin, RoleOps:
		return true
	case RoleManager:
		for _, id := range s.LocationIDs {
			if id == locationID {
				return true
			}
		}
		return false
	}
	return false
}

// CanPerformAction decides a record-level action against a record owned by
// targetCompanyID. Super users may do anything. Other roles must match the
// company; within it, company admins get every action, ops everything but
// delete, managers view only. Unknown roles or actions deny.
func (s Scope) CanPerformAction(targetCompanyID string, action Action) bool {
	switch action {
	case ActionView, ActionEdit, ActionDelete:
	default:
		return false
	}
	if s.Role == RoleSuperUser {
		return true
	}
	if s.CompanyID == "" || s.CompanyID != targetCompanyID {
		return false
	}
	switch s.Role {
	case RoleCompanyAdmin:
		return true
	case RoleOps:
		return action != ActionDelete
	case RoleManager:
		return action == ActionView
	}
	return false
}

// VisibleLocationIDs filters candidate location ids of the scope's company
// down to those the scope may access. Used when listing a company's
// locations for a manager.
func (s Scope) VisibleLocationIDs(companyID string, candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if s.CanAccessLocation(companyID, id) {
			out = append(out, id)
		}
	}
	return out
}
