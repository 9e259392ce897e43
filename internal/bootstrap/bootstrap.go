package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/facultyhub/internal/app/controllers"
	appJobs "github.com/yigit/facultyhub/internal/app/jobs"
	appMigrations "github.com/yigit/facultyhub/internal/app/migrations"
	appRepos "github.com/yigit/facultyhub/internal/app/repositories"
	appRoutes "github.com/yigit/facultyhub/internal/app/routes"
	appServices "github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/config"
	"github.com/yigit/facultyhub/internal/db"
	appMiddleware "github.com/yigit/facultyhub/internal/middleware"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/filestorage"
	"github.com/yigit/facultyhub/internal/pkg/logger"
	"github.com/yigit/facultyhub/internal/pkg/validation"
	"github.com/yigit/facultyhub/internal/seed"
)

// uploadsURLPrefix is the public path uploaded documents are served under
const uploadsURLPrefix = "/uploads"

// DefaultConfigPath is where the configuration file is looked up
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	FacultyService       appServices.FacultyService
	StatisticsService    appServices.StatisticsService
	DocumentService      appServices.DocumentService
	FacultyController    *appControllers.FacultyController
	StatisticsController *appControllers.StatisticsController
	DocumentController   *appControllers.DocumentController
	Refresher            *appJobs.EligibilityRefresher
	FileStorage          *filestorage.LocalStorage
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// Storage is the configured backend together with its lifecycle hooks
type Storage struct {
	Driver string
	Repos  *appRepos.Repositories
	ping   func(ctx context.Context) error
	close  func(ctx context.Context) error
}

// Ping checks that the backend is reachable
func (s *Storage) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	if err := s.ping(ctx); err != nil {
		return apperrors.NewStorageError("ping", err)
	}
	return nil
}

// Close releases the backend's connections
func (s *Storage) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	lgr.Info().Str("logLevel", logger.ParseLevel(cfg.Logging.Level).String()).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage connects the configured backend. Postgres migrations are
// applied and Mongo indexes created when migrate is true.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, migrate bool) (*Storage, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing storage connection...")

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		if migrate {
			if err := RunMigrations(ctx, database, cfg.Database.MigrationsDir, lgr); err != nil {
				_ = database.Close(ctx)
				return nil, err
			}
		}
		lgr.Info().Msg("Database connection successfully established.")
		return &Storage{
			Driver: cfg.Database.Driver,
			Repos:  appRepos.NewPostgresRepositories(database.Pool),
			ping:   database.Ping,
			close:  database.Close,
		}, nil

	case config.DriverMongo:
		database, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to mongo")
			return nil, err
		}
		repos := appRepos.NewMongoRepositories(database.Database)
		if migrate {
			if err := repos.EnsureIndexes(ctx); err != nil {
				lgr.Error().Err(err).Msg("Failed to create mongo indexes")
				_ = database.Close(ctx)
				return nil, err
			}
		}
		lgr.Info().Str("database", cfg.Database.MongoDatabase).Msg("Mongo connection successfully established.")
		return &Storage{
			Driver: cfg.Database.Driver,
			Repos:  repos,
			ping:   database.Ping,
			close:  database.Close,
		}, nil

	case config.DriverMemory:
		repos, err := appRepos.NewMemoryRepositories()
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory store: %w", err)
		}
		lgr.Warn().Msg("Using in-memory storage, data is lost on shutdown")
		return &Storage{Driver: cfg.Database.Driver, Repos: repos}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// RunMigrations applies every pending SQL file of dir
func RunMigrations(ctx context.Context, database *db.PostgresDB, dir string, lgr zerolog.Logger) error {
	lgr.Info().Str("path", dir).Msg("Running database migrations...")

	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		lgr.Error().Str("path", dir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", dir, err)
	}

	migrator := appMigrations.NewMigrator(database, lgr)
	if err := migrator.MigrateFromDirectory(ctx, dir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application services, controllers and jobs.
func BuildDependencies(cfg *config.Config, storage *Storage, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Repos:  storage.Repos,
		Logger: lgr,
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, uploadsURLPrefix)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.FacultyService = appServices.NewFacultyService(storage.Repos.FacultyStore, validation.NewValidator())
	deps.StatisticsService = appServices.NewStatisticsService(storage.Repos.FacultyStore)
	deps.DocumentService = appServices.NewDocumentService(storage.Repos.FacultyStore, deps.FileStorage)

	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.StatisticsController = appControllers.NewStatisticsController(deps.StatisticsService)
	deps.DocumentController = appControllers.NewDocumentController(deps.DocumentService, cfg.MaxUploadBytes())

	if cfg.Jobs.EligibilityRefreshEnabled {
		deps.Refresher = appJobs.NewEligibilityRefresher(deps.FacultyService, cfg.Jobs.EligibilityRefreshSchedule, lgr)
	}

	return deps, nil
}

// SeedIfEnabled creates the sample records when seeding is switched on
func SeedIfEnabled(ctx context.Context, cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	if _, err := seed.CreateDefaultData(ctx, deps.FacultyService, lgr); err != nil {
		// Startup continues with whatever was created
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, storage *Storage, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery(lgr))

	appRoutes.SetupRouter(router,
		deps.FacultyController,
		deps.StatisticsController,
		deps.DocumentController,
		storage.Ping,
	)
	appRoutes.SetupSwagger(router)

	// Uploaded documents
	router.Static(deps.FileStorage.URLPrefix(), deps.FileStorage.BasePath())
	lgr.Info().Str("path", deps.FileStorage.BasePath()).Msg("Static file serving configured for uploads directory")

	return router
}
