package http_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/safebite-api/internal/domain/rbac"
	httpiface "github.com/safebite/safebite-api/internal/interfaces/http"
)

// asRole fakes an authenticated request without going through the JWT layer.
func asRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(httpiface.LocalUserID, "u1")
		c.Locals(httpiface.LocalRole, role)
		c.Locals(httpiface.LocalCompanyID, "c1")
		return c.Next()
	}
}

func guardedApp(role string, guards ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{asRole(role)}, guards...)
	handlers = append(handlers, func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/guarded", handlers...)
	return app
}

func statusOf(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireRole_Allows(t *testing.T) {
	app := guardedApp("company_admin", httpiface.RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin))
	assert.Equal(t, fiber.StatusOK, statusOf(t, app))
}

func TestRequireRole_Denies(t *testing.T) {
	app := guardedApp("ops", httpiface.RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin))
	assert.Equal(t, fiber.StatusForbidden, statusOf(t, app))
}

func TestRequireRole_UnknownRoleDenied(t *testing.T) {
	app := guardedApp("auditor", httpiface.RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin, rbac.RoleOps, rbac.RoleManager))
	assert.Equal(t, fiber.StatusForbidden, statusOf(t, app))
}

func TestRequireRole_EmptyListDeniesEveryone(t *testing.T) {
	for _, role := range []string{"super_user", "company_admin", "ops", "manager"} {
		app := guardedApp(role, httpiface.RequireRole())
		assert.Equal(t, fiber.StatusForbidden, statusOf(t, app), role)
	}
}

func TestRequirePermission_Allows(t *testing.T) {
	app := guardedApp("ops", httpiface.RequirePermission(rbac.CapRecordTemperatures))
	assert.Equal(t, fiber.StatusOK, statusOf(t, app))
}

func TestRequirePermission_Denies(t *testing.T) {
	app := guardedApp("manager", httpiface.RequirePermission(rbac.CapCreateChecklists))
	assert.Equal(t, fiber.StatusForbidden, statusOf(t, app))
}

func TestRequirePermission_UnknownRoleDenied(t *testing.T) {
	app := guardedApp("", httpiface.RequirePermission(rbac.CapViewAllRecords))
	assert.Equal(t, fiber.StatusForbidden, statusOf(t, app))
}

func TestStackedGuards_BothMustPass(t *testing.T) {
	// company_admin passes the role check but cannot create companies
	app := guardedApp("company_admin",
		httpiface.RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin),
		httpiface.RequirePermission(rbac.CapCreateCompanies),
	)
	assert.Equal(t, fiber.StatusForbidden, statusOf(t, app))

	// super_user passes both
	app = guardedApp("super_user",
		httpiface.RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin),
		httpiface.RequirePermission(rbac.CapCreateCompanies),
	)
	assert.Equal(t, fiber.StatusOK, statusOf(t, app))
}

func TestForbiddenBodyIsStatic(t *testing.T) {
	app := guardedApp("manager", httpiface.RequirePermission(rbac.CapManageUsers))
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"code":"FORBIDDEN","message":"access denied"}`, string(body))
}
