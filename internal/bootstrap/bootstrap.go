// Package bootstrap wires configuration, the document store, services,
// controllers and the router together.
package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/notesync/notesync/internal/app/controllers"
	appRoutes "github.com/notesync/notesync/internal/app/routes"
	appServices "github.com/notesync/notesync/internal/app/services"
	"github.com/notesync/notesync/internal/config"
	"github.com/notesync/notesync/internal/metrics"
	appMiddleware "github.com/notesync/notesync/internal/middleware"
	"github.com/notesync/notesync/internal/pkg/logger"
	"github.com/notesync/notesync/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService appServices.CourseService
	NoteService   appServices.NoteService
	AuthService   appServices.AuthService
	DataService   appServices.DataService

	DataController   *appControllers.DataController
	CourseController *appControllers.CourseController
	NoteController   *appControllers.NoteController
	AuthController   *appControllers.AuthController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the JSON document store, seeding it on first run.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	st, err := store.Open(cfg.Store.Path, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open document store")
		return nil, err
	}
	return st, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(st *store.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.CourseService = appServices.NewCourseService(st)
	deps.NoteService = appServices.NewNoteService(st)
	deps.AuthService = appServices.NewAuthService(st)
	deps.DataService = appServices.NewDataService(st)

	deps.DataController = appControllers.NewDataController(deps.DataService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.NoteController = appControllers.NewNoteController(deps.NoteService, lgr)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)

	return deps
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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())
	router.Use(metrics.Instrument())

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	appRoutes.SetupRouter(router,
		deps.DataController,
		deps.CourseController,
		deps.NoteController,
		deps.AuthController,
	)

	return router
}
