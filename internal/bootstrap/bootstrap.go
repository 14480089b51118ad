package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/selim/placemate/docs" // Import generated swagger docs
	appControllers "github.com/selim/placemate/internal/app/controllers"
	appRoutes "github.com/selim/placemate/internal/app/routes"
	appServices "github.com/selim/placemate/internal/app/services"
	"github.com/selim/placemate/internal/app/store"
	"github.com/selim/placemate/internal/config"
	"github.com/selim/placemate/internal/db"
	appMiddleware "github.com/selim/placemate/internal/middleware"
	pkgAuth "github.com/selim/placemate/internal/pkg/auth"
	"github.com/selim/placemate/internal/pkg/logger"
	"github.com/selim/placemate/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store              *store.Store
	AuthService        *appServices.AuthService
	CompanyService     *appServices.CompanyService
	StudentService     *appServices.StudentService
	SlotService        *appServices.SlotService
	MatchingService    *appServices.MatchingService
	ImportService      *appServices.ImportService
	OfferService       *appServices.OfferService
	AuthController     *appControllers.AuthController
	CompanyController  *appControllers.CompanyController
	StudentController  *appControllers.StudentController
	SlotController     *appControllers.SlotController
	MatchingController *appControllers.MatchingController
	ImportController   *appControllers.ImportController
	OfferController    *appControllers.OfferController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
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

// SetupStore wires the aggregate store to the configured snapshot backend.
// The returned pool is nil for the memory driver.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, *pgxpool.Pool, error) {
	switch cfg.Store.Driver {
	case "postgres":
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		snap, err := store.NewPostgresSnapshotter(ctx, database.Pool)
		if err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
		}

		lgr.Info().Msg("Postgres snapshot store ready")
		return store.New(snap), database.Pool, nil

	default:
		lgr.Info().Msg("Using in-memory snapshot store")
		return store.New(store.NewMemorySnapshotter()), nil, nil
	}
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: st, Logger: lgr}

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService, err = appServices.NewAuthService(cfg.Admin.Email, cfg.Admin.Password, deps.JWTService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	deps.CompanyService = appServices.NewCompanyService(st)
	deps.StudentService = appServices.NewStudentService(st)
	deps.SlotService = appServices.NewSlotService(st)
	deps.MatchingService = appServices.NewMatchingService(st)
	deps.ImportService = appServices.NewImportService(st)
	deps.OfferService = appServices.NewOfferService(st)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SlotController = appControllers.NewSlotController(deps.SlotService)
	deps.MatchingController = appControllers.NewMatchingController(deps.MatchingService)
	deps.ImportController = appControllers.NewImportController(deps.ImportService)
	deps.OfferController = appControllers.NewOfferController(deps.OfferService)

	// Audit every applied mutation
	st.Subscribe(func(ev store.Event) {
		lgr.Debug().Str("op", ev.Op).Msg("State mutation applied")
	})

	if cfg.Seed.Demo {
		if err := seed.CreateDemoData(context.Background(), deps.CompanyService, deps.StudentService, deps.SlotService, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CompanyController,
		deps.StudentController,
		deps.SlotController,
		deps.MatchingController,
		deps.ImportController,
		deps.OfferController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
