package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/safebite/safebite-api/internal/application/analytics"
	"github.com/safebite/safebite-api/internal/application/auth"
	"github.com/safebite/safebite-api/internal/application/export"
	"github.com/safebite/safebite-api/internal/application/usecase"
	infraexcel "github.com/safebite/safebite-api/internal/infrastructure/excel"
	infrapdf "github.com/safebite/safebite-api/internal/infrastructure/pdf"
	"github.com/safebite/safebite-api/internal/infrastructure/postgres"
	infraredis "github.com/safebite/safebite-api/internal/infrastructure/redis"
	httpRouter "github.com/safebite/safebite-api/internal/interfaces/http"
	"github.com/safebite/safebite-api/pkg/config"
	"github.com/safebite/safebite-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB, log); err != nil {
		log.Fatal().Err(err).Msg("database migrations")
	}

	redisClient, err := infraredis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis connection")
	}
	defer redisClient.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	referenceRepo := postgres.NewReferenceRepository(pool)
	temperatureRepo := postgres.NewTemperatureRepository(pool)
	checklistRepo := postgres.NewChecklistRepository(pool)
	progressRepo := postgres.NewProgressRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, redisClient, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	userUC := usecase.NewUserUseCase(userRepo, locationRepo)
	referenceUC := usecase.NewReferenceUseCase(referenceRepo, locationRepo)
	temperatureUC := usecase.NewTemperatureUseCase(temperatureRepo, locationRepo)
	checklistUC := usecase.NewChecklistUseCase(checklistRepo, locationRepo)
	progressUC := analytics.NewProgressUseCase(progressRepo, locationRepo)

	pdfRenderer := infrapdf.NewMarotoReportGenerator()
	excelRenderer := infraexcel.NewExcelizeReportGenerator()
	exportUC := export.NewUseCase(
		temperatureRepo, checklistRepo, locationRepo, userRepo,
		pdfRenderer, excelRenderer,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		LocationUC:    locationUC,
		UserUC:        userUC,
		ReferenceUC:   referenceUC,
		TemperatureUC: temperatureUC,
		ChecklistUC:   checklistUC,
		ProgressUC:    progressUC,
		ExportUC:      exportUC,
		JWTSecret:     cfg.JWT.Secret,
		Revoker:       redisClient,
		LoginLimiter:  redisClient,
		SwaggerFile:   "./docs/swagger.json",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
