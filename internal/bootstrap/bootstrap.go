package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/coursecraft/internal/app/auth"
	appControllers "github.com/yigit/coursecraft/internal/app/controllers"
	appFunctions "github.com/yigit/coursecraft/internal/app/functions"
	appMigrations "github.com/yigit/coursecraft/internal/app/migrations"
	appRepos "github.com/yigit/coursecraft/internal/app/repositories"
	appRoutes "github.com/yigit/coursecraft/internal/app/routes"
	appServices "github.com/yigit/coursecraft/internal/app/services"
	"github.com/yigit/coursecraft/internal/config"
	"github.com/yigit/coursecraft/internal/db"
	appMiddleware "github.com/yigit/coursecraft/internal/middleware"
	pkgAuth "github.com/yigit/coursecraft/internal/pkg/auth"
	"github.com/yigit/coursecraft/internal/pkg/cache"
	"github.com/yigit/coursecraft/internal/pkg/email"
	"github.com/yigit/coursecraft/internal/pkg/events"
	"github.com/yigit/coursecraft/internal/pkg/filestorage"
	"github.com/yigit/coursecraft/internal/pkg/helpers"
	"github.com/yigit/coursecraft/internal/pkg/logger"
	"github.com/yigit/coursecraft/internal/pkg/websocket"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config         *config.Config
	Logger         zerolog.Logger
	DB             *db.PostgresDB
	Repos          *appRepos.Repositories
	Cache          cache.CourseCache
	closeCache     func() error
	FileStorage    *filestorage.LocalStorage
	Hub            *websocket.Hub
	Registry       *events.Registry
	Scheduler      *events.Scheduler
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	AuthMiddleware *appMiddleware.AuthMiddleware
	LiveHandler    *websocket.Handler
	Controllers    appRoutes.Controllers
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// The returned reporter is nil when Rollbar is not configured.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, *logger.RollbarReporter, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	hostname, _ := os.Hostname()
	reporter := logger.NewRollbarReporter(logger.RollbarConfig{
		Token:       cfg.Rollbar.Token,
		Environment: cfg.Rollbar.Environment,
		CodeVersion: cfg.Rollbar.CodeVersion,
		ServerHost:  hostname,
	})

	logCfg := logger.Config{Level: logLevel, Pretty: prettyLog}
	if reporter != nil {
		logCfg.Reporter = reporter
		appMiddleware.SetErrorReporter(reporter)
	}
	logger.Configure(logCfg)

	lgr := log.Logger
	lgr.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Bool("rollbar", reporter != nil).
		Msg("Logger configured")
	return cfg, lgr, reporter, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := appMigrations.NewMigrator(database.Pool).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg, Logger: lgr, DB: database}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	fileStorageBaseURL := strings.TrimRight(cfg.Server.PublicURL, "/") + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Cache, deps.closeCache = cache.NewCourseCache(ctx, cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      helpers.ParseDuration(cfg.Redis.TTL, 5*time.Minute),
	}, lgr)

	deps.Hub = websocket.NewHub(lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.CourseRepository)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Services
	courseService := appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.ChapterRepository,
		deps.AuthzService,
		deps.Cache,
		deps.Hub,
		deps.FileStorage,
	)
	chapterService := appServices.NewChapterService(
		deps.Repos.ChapterRepository,
		deps.AuthzService,
		deps.Cache,
		deps.Hub,
		deps.FileStorage,
	)
	previewService := appServices.NewPreviewService(deps.Repos.CourseRepository, deps.Repos.ChapterRepository)
	userService := appServices.NewUserService(deps.Repos.UserRepository)

	mailer := email.NewEmailService(email.Config{
		APIKey:    cfg.Email.SendgridKey,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.FromEmail,
		BaseURL:   cfg.Server.PublicURL,
	}, lgr)

	// Event functions
	deps.Registry = events.NewRegistry(deps.Repos.EventRunRepository, lgr)
	if err := registerFunctions(deps.Registry, appFunctions.Deps{
		Users:     userService,
		Mailer:    mailer,
		Runs:      deps.Repos.EventRunRepository,
		Retention: helpers.ParseDuration(cfg.Events.RunRetention, 30*24*time.Hour),
	}); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Events.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid events timezone: %w", err)
	}
	deps.Scheduler = events.NewScheduler(deps.Registry, loc, lgr)

	// Controllers
	deps.LiveHandler = websocket.NewHandler(deps.Hub, deps.AuthzService, appMiddleware.HandleAPIError, cfg.Server.AllowedOrigins, lgr)
	deps.Controllers = appRoutes.Controllers{
		Course:  appControllers.NewCourseController(courseService),
		Chapter: appControllers.NewChapterController(chapterService),
		Preview: appControllers.NewPreviewController(previewService),
		Event:   appControllers.NewEventController(deps.Registry, deps.Repos.EventRunRepository, cfg.Events.SigningKey),
		User:    appControllers.NewUserController(userService),
		Health:  appControllers.NewHealthController(database),
	}

	return deps, nil
}

func registerFunctions(registry *events.Registry, fnDeps appFunctions.Deps) error {
	for _, fn := range appFunctions.All(fnDeps) {
		if err := registry.Register(fn); err != nil {
			return fmt.Errorf("failed to register function %s: %w", fn.ID, err)
		}
	}
	return nil
}

// StartBackground runs the live hub and the cron scheduler until ctx is done.
func (d *Dependencies) StartBackground(ctx context.Context) error {
	go d.Hub.Run(ctx)
	return d.Scheduler.Start(ctx)
}

// Close stops background work and releases external connections.
func (d *Dependencies) Close(ctx context.Context) {
	if d.Scheduler != nil {
		if err := d.Scheduler.Stop(ctx); err != nil {
			d.Logger.Warn().Err(err).Msg("Scheduler did not stop cleanly")
		}
	}
	if d.closeCache != nil {
		if err := d.closeCache(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.LiveHandler, deps.AuthMiddleware)

	return router
}
