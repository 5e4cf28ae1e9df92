package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/studentms/internal/app/controllers"
	appMigrations "github.com/yigit/studentms/internal/app/migrations"
	"github.com/yigit/studentms/internal/app/models"
	appRepos "github.com/yigit/studentms/internal/app/repositories"
	appRoutes "github.com/yigit/studentms/internal/app/routes"
	appServices "github.com/yigit/studentms/internal/app/services"
	"github.com/yigit/studentms/internal/config"
	"github.com/yigit/studentms/internal/db"
	appMiddleware "github.com/yigit/studentms/internal/middleware"
	"github.com/yigit/studentms/internal/pkg/academicyear"
	pkgAuth "github.com/yigit/studentms/internal/pkg/auth"
	"github.com/yigit/studentms/internal/pkg/logger"
	"github.com/yigit/studentms/internal/pkg/validation"
	"github.com/yigit/studentms/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Tokens         *pkgAuth.TokenAuthenticator
	AuthService    appServices.AuthService
	AuditService   appServices.AuditService
	OptionService  appServices.OptionService
	StudentService appServices.StudentService
	ExcelService   appServices.ExcelService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logConfig := logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format)
	logger.Configure(logConfig)

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logConfig.Level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds the default admin.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator, err := appMigrations.NewMigrator(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	admin := seed.AdminAccount{Username: cfg.Seed.AdminUsername, Password: cfg.Seed.AdminPassword}
	if err := seed.CreateDefaultData(ctx, appRepos.NewUserRepository(dbPool), admin, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	return BuildDependenciesWithRepos(cfg, appRepos.NewRepositories(dbPool), lgr)
}

// BuildDependenciesWithRepos wires services and controllers on top of the given repositories
func BuildDependenciesWithRepos(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	deps.Tokens = pkgAuth.NewTokenAuthenticator(pkgAuth.TokenConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	years := academicyear.NewResolver(cfg.Academic.CutoverMonth)

	deps.AuditService = appServices.NewAuditService(repos.AuditLogRepository)
	deps.AuthService = appServices.NewAuthService(repos.UserRepository, deps.Tokens, cfg.Auth.AllowAdminRegistration)
	deps.OptionService = appServices.NewOptionService(repos.OptionRepository, years, deps.AuditService)
	deps.StudentService = appServices.NewStudentService(repos.StudentRepository, deps.OptionService, deps.AuditService)
	deps.ExcelService = appServices.NewExcelService(repos.StudentRepository, deps.OptionService, deps.AuditService, cfg.Import.MaxRows)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Tokens)

	catalog := func(category models.Category, label string) *appControllers.CatalogController {
		return appControllers.NewCatalogController(appServices.NewCatalogService(category, label, deps.OptionService), label)
	}

	deps.Controllers = appRoutes.Controllers{
		Auth:    appControllers.NewAuthController(deps.AuthService, logger.Component("auth")),
		Student: appControllers.NewStudentController(deps.StudentService),
		Option:  appControllers.NewOptionController(deps.OptionService),
		Batch:   catalog(models.CategoryBatch, "Batch"),
		Hostel:  catalog(models.CategoryHostel, "Hostel"),
		Program: catalog(models.CategoryProgram, "Program"),
		Audit:   appControllers.NewAuditController(deps.AuditService),
		Excel:   appControllers.NewExcelController(deps.ExcelService, cfg.Server.MaxUploadBytes),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterRules(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register validation rules")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
