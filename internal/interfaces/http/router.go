package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/safebite/safebite-api/internal/application/analytics"
	"github.com/safebite/safebite-api/internal/application/auth"
	"github.com/safebite/safebite-api/internal/application/export"
	"github.com/safebite/safebite-api/internal/application/usecase"
	"github.com/safebite/safebite-api/internal/domain/rbac"
)

// RouterDeps wires the use cases and middleware collaborators into the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	LocationUC    *usecase.LocationUseCase
	UserUC        *usecase.UserUseCase
	ReferenceUC   *usecase.ReferenceUseCase
	TemperatureUC *usecase.TemperatureUseCase
	ChecklistUC   *usecase.ChecklistUseCase
	ProgressUC    *analytics.ProgressUseCase
	ExportUC      *export.UseCase
	JWTSecret     string
	Revoker       auth.TokenRevoker
	LoginLimiter  LoginLimiter
	SwaggerFile   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if deps.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/api",
			FilePath: deps.SwaggerFile,
			Path:     "docs",
		}))
	}

	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", LoginRateLimit(deps.LoginLimiter, 10, time.Minute), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Revoker))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Profile)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", RequirePermission(rbac.CapCreateCompanies), companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin), companyHandler.Update)
	companies.Delete("/:id", RequireRole(rbac.RoleSuperUser), companyHandler.Delete)

	// Locations
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin), locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin), locationHandler.Update)
	locations.Delete("/:id", RequireRole(rbac.RoleSuperUser, rbac.RoleCompanyAdmin), locationHandler.Delete)

	// Users (admin only)
	users := protected.Group("/users", RequirePermission(rbac.CapManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/roles", userHandler.AssignableRoles)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Reference data for the temperature form
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	units := protected.Group("/units")
	units.Post("/", referenceHandler.CreateUnit)
	units.Get("/", referenceHandler.ListUnits)
	units.Delete("/:id", referenceHandler.DeleteUnit)
	foodItems := protected.Group("/food-items")
	foodItems.Post("/", referenceHandler.CreateFoodItem)
	foodItems.Get("/", referenceHandler.ListFoodItems)
	foodItems.Delete("/:id", referenceHandler.DeleteFoodItem)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", referenceHandler.CreateSupplier)
	suppliers.Get("/", referenceHandler.ListSuppliers)
	suppliers.Delete("/:id", referenceHandler.DeleteSupplier)

	// Temperature logs
	temps := protected.Group("/temperatures")
	temperatureHandler := NewTemperatureHandler(deps.TemperatureUC)
	temps.Post("/", RequirePermission(rbac.CapRecordTemperatures), temperatureHandler.Record)
	temps.Get("/", RequirePermission(rbac.CapViewAllRecords), temperatureHandler.ListDay)
	temps.Post("/:id/corrective-action", RequirePermission(rbac.CapRecordTemperatures), temperatureHandler.AddCorrectiveAction)

	// Checklists
	checklists := protected.Group("/checklists")
	checklistHandler := NewChecklistHandler(deps.ChecklistUC)
	checklists.Post("/", RequirePermission(rbac.CapCreateChecklists), checklistHandler.Create)
	checklists.Get("/board", RequirePermission(rbac.CapViewAllRecords), checklistHandler.Board)
	checklists.Get("/calendar", RequirePermission(rbac.CapViewAllRecords), checklistHandler.Calendar)
	checklists.Get("/:id", checklistHandler.GetByID)
	checklists.Put("/:id", RequirePermission(rbac.CapEditChecklists), checklistHandler.Update)
	checklists.Delete("/:id", RequirePermission(rbac.CapDeleteChecklists), checklistHandler.Delete)
	checklists.Put("/:id/subtasks/:subtaskID", RequirePermission(rbac.CapCompleteChecklists), checklistHandler.ToggleSubtask)

	// Progress chart
	progressHandler := NewProgressHandler(deps.ProgressUC)
	protected.Get("/progress", RequirePermission(rbac.CapViewAllRecords), progressHandler.Week)

	// Record downloads
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/exports", RequirePermission(rbac.CapDownloadRecords), exportHandler.Generate)
}
