package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/prabal/classhub/internal/app/auth"
	appControllers "github.com/prabal/classhub/internal/app/controllers"
	appMigrations "github.com/prabal/classhub/internal/app/migrations"
	appRepos "github.com/prabal/classhub/internal/app/repositories"
	appRoutes "github.com/prabal/classhub/internal/app/routes"
	appServices "github.com/prabal/classhub/internal/app/services"
	"github.com/prabal/classhub/internal/config"
	"github.com/prabal/classhub/internal/db"
	appMiddleware "github.com/prabal/classhub/internal/middleware"
	pkgAuth "github.com/prabal/classhub/internal/pkg/auth"
	"github.com/prabal/classhub/internal/pkg/filestorage"
	"github.com/prabal/classhub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	UserService       appServices.UserService
	RoomService       appServices.RoomService
	ContentService    appServices.ContentService
	UserController    *appControllers.UserController
	RoomController    *appControllers.RoomController
	ContentController *appControllers.ContentController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	TokenService      *pkgAuth.TokenService
	AuthzService      *appAuth.AuthorizationService
	FileStorage       *filestorage.LocalStorage
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations applied.")
	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The uploads directory is served statically; stored file URLs must
	// point back at it.
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.TokenService = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey: cfg.Auth.Secret,
		Issuer:    cfg.Auth.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository)

	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.RoomRepository,
		deps.AuthzService,
		lgr,
	)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository, lgr)
	deps.ContentService = appServices.NewContentService(
		deps.Repos.PostRepository,
		deps.Repos.AnnouncementRepository,
		deps.FileStorage,
		deps.AuthzService,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenService)

	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.ContentController = appControllers.NewContentController(deps.ContentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.RoomController,
		deps.ContentController,
		deps.AuthMiddleware,
	)

	return router
}
