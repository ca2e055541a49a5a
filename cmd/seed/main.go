// Seeds a demo tenant: one company with two locations, one user per role,
// reference data and a set of checklists and temperature readings to click
// around with. Intended for local development only.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
	"github.com/safebite/safebite-api/internal/infrastructure/postgres"
	"github.com/safebite/safebite-api/pkg/config"
	"github.com/safebite/safebite-api/pkg/logger"
)

const demoPassword = "safebite-demo"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB, log); err != nil {
		log.Fatal().Err(err).Msg("database migrations")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	referenceRepo := postgres.NewReferenceRepository(pool)
	checklistRepo := postgres.NewChecklistRepository(pool)
	temperatureRepo := postgres.NewTemperatureRepository(pool)

	if existing, err := companyRepo.GetByName(ctx, "Harbor Kitchen Group"); err != nil {
		log.Fatal().Err(err).Msg("check existing seed")
	} else if existing != nil {
		log.Info().Msg("demo data already present, nothing to do")
		return
	}

	now := time.Now()

	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      "Harbor Kitchen Group",
		Address:   "1 Quayside Walk",
		Phone:     "+44 20 7946 0000",
		Email:     "hello@harborkitchen.example",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(ctx, company); err != nil {
		log.Fatal().Err(err).Msg("seed company")
	}

	highStreet := seedLocation(ctx, log, locationRepo, company.ID, "High Street", "12 High Street")
	riverside := seedLocation(ctx, log, locationRepo, company.ID, "Riverside", "3 Riverside Quay")

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash demo password")
	}

	seedUser(ctx, log, userRepo, &entity.User{
		ID: uuid.New().String(), Email: "root@safebite.example",
		PasswordHash: string(hash), FullName: "Sam Root",
		Role: rbac.RoleSuperUser, Status: "active",
		CreatedAt: now, UpdatedAt: now,
	})
	seedUser(ctx, log, userRepo, &entity.User{
		ID: uuid.New().String(), CompanyID: company.ID, Email: "admin@harborkitchen.example",
		PasswordHash: string(hash), FullName: "Alex Admin",
		Role: rbac.RoleCompanyAdmin, Status: "active",
		CreatedAt: now, UpdatedAt: now,
	})
	seedUser(ctx, log, userRepo, &entity.User{
		ID: uuid.New().String(), CompanyID: company.ID, Email: "ops@harborkitchen.example",
		PasswordHash: string(hash), FullName: "Olivia Ops",
		Role: rbac.RoleOps, Status: "active",
		CreatedAt: now, UpdatedAt: now,
	})
	manager := &entity.User{
		ID: uuid.New().String(), CompanyID: company.ID, Email: "manager@harborkitchen.example",
		PasswordHash: string(hash), FullName: "Morgan Shift",
		Role: rbac.RoleManager, LocationIDs: []string{highStreet.ID}, Status: "active",
		CreatedAt: now, UpdatedAt: now,
	}
	seedUser(ctx, log, userRepo, manager)

	fridge := &entity.ApplianceUnit{
		ID: uuid.New().String(), LocationID: highStreet.ID,
		Name: "Walk-in fridge", Type: entity.TempFridge, CreatedAt: now,
	}
	freezer := &entity.ApplianceUnit{
		ID: uuid.New().String(), LocationID: highStreet.ID,
		Name: "Chest freezer", Type: entity.TempFreezer, CreatedAt: now,
	}
	for _, u := range []*entity.ApplianceUnit{fridge, freezer} {
		if err := referenceRepo.CreateUnit(ctx, u); err != nil {
			log.Fatal().Err(err).Str("unit", u.Name).Msg("seed unit")
		}
	}

	chicken := &entity.FoodItem{
		ID: uuid.New().String(), CompanyID: company.ID,
		Name: "Roast chicken", CreatedAt: now,
	}
	if err := referenceRepo.CreateFoodItem(ctx, chicken); err != nil {
		log.Fatal().Err(err).Msg("seed food item")
	}
	supplier := &entity.Supplier{
		ID: uuid.New().String(), LocationID: highStreet.ID,
		Name: "Quayside Fish Co", CreatedAt: now,
	}
	if err := referenceRepo.CreateSupplier(ctx, supplier); err != nil {
		log.Fatal().Err(err).Msg("seed supplier")
	}

	seedChecklist(ctx, log, checklistRepo, highStreet.ID, "Opening", "daily", []seedTask{
		{"Front of house", []string{"Unlock and check alarms", "Wipe tables"}},
		{"Kitchen", []string{"Check fridge temps", "Date-label prep"}},
	})
	seedChecklist(ctx, log, checklistRepo, highStreet.ID, "Closing", "daily", []seedTask{
		{"Kitchen", []string{"Bins out", "Surfaces sanitised", "Fridges locked"}},
	})
	seedChecklist(ctx, log, checklistRepo, highStreet.ID, "Deep clean", "weekly", []seedTask{
		{"Equipment", []string{"Descale dishwasher", "Clean extraction filters"}},
	})
	seedChecklist(ctx, log, checklistRepo, riverside.ID, "Opening", "daily", []seedTask{
		{"Front of house", []string{"Unlock and check alarms"}},
	})

	readings := []*entity.TemperatureRecord{
		{
			ID: uuid.New().String(), LocationID: highStreet.ID, Type: entity.TempFridge,
			Value: decimal.NewFromFloat(3.5), UnitID: fridge.ID,
			RecordedBy: manager.ID, RecordedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: uuid.New().String(), LocationID: highStreet.ID, Type: entity.TempFreezer,
			Value: decimal.NewFromFloat(-18), UnitID: freezer.ID,
			RecordedBy: manager.ID, RecordedAt: now.Add(-90 * time.Minute),
		},
		{
			ID: uuid.New().String(), LocationID: highStreet.ID, Type: entity.TempFood,
			Value: decimal.NewFromFloat(68), FoodItemID: chicken.ID,
			OutOfRange:       true,
			CorrectiveAction: "Returned to oven, re-probed at 82C",
			RecordedBy:       manager.ID, RecordedAt: now.Add(-time.Hour),
		},
		{
			ID: uuid.New().String(), LocationID: highStreet.ID, Type: entity.TempDelivery,
			Value: decimal.NewFromFloat(4.2), SupplierID: supplier.ID,
			RecordedBy: manager.ID, RecordedAt: now.Add(-30 * time.Minute),
		},
	}
	for _, r := range readings {
		if err := temperatureRepo.Create(ctx, r); err != nil {
			log.Fatal().Err(err).Msg("seed temperature record")
		}
	}

	log.Info().
		Str("company", company.Name).
		Str("password", demoPassword).
		Msg("demo data seeded, log in with any of the *@harborkitchen.example accounts")
}

func seedLocation(ctx context.Context, log *logger.Logger, repo *postgres.LocationRepo, companyID, name, address string) *entity.Location {
	now := time.Now()
	loc := &entity.Location{
		ID: uuid.New().String(), CompanyID: companyID,
		Name: name, Address: address,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(ctx, loc); err != nil {
		log.Fatal().Err(err).Str("location", name).Msg("seed location")
	}
	return loc
}

func seedUser(ctx context.Context, log *logger.Logger, repo *postgres.UserRepo, u *entity.User) {
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal().Err(err).Str("email", u.Email).Msg("seed user")
	}
}

type seedTask struct {
	name     string
	subtasks []string
}

func seedChecklist(ctx context.Context, log *logger.Logger, repo *postgres.ChecklistRepo, locationID, title, frequency string, tasks []seedTask) {
	now := time.Now()
	cl := &entity.Checklist{
		ID: uuid.New().String(), LocationID: locationID,
		Title: title, Frequency: frequency,
		CreatedAt: now, UpdatedAt: now,
	}
	for pos, t := range tasks {
		task := entity.ChecklistTask{
			ID: uuid.New().String(), ChecklistID: cl.ID,
			Description: t.name, Position: pos,
		}
		for i, st := range t.subtasks {
			task.Subtasks = append(task.Subtasks, entity.ChecklistSubtask{
				ID: uuid.New().String(), TaskID: task.ID,
				Description: st, Position: i,
			})
		}
		cl.Tasks = append(cl.Tasks, task)
	}
	if err := repo.Create(ctx, cl); err != nil {
		log.Fatal().Err(err).Str("checklist", title).Msg("seed checklist")
	}
}
