package app

import (
	"fmt"

	"roomly_backend/internal/config"
	"roomly_backend/internal/database"
	"roomly_backend/internal/handlers"
	"roomly_backend/internal/logger"
	"roomly_backend/internal/middleware"
	"roomly_backend/internal/repositories"
	"roomly_backend/internal/routes"
	"roomly_backend/internal/services"
	"roomly_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	// Expired refresh tokens accumulate between restarts; sweep them here
	// so the table only carries live sessions.
	if err := repositories.NewUserRepository(gormDB).CleanExpiredRefreshTokens(); err != nil {
		logger.Warn("Failed to clean expired refresh tokens", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// openDatabase dials the configured driver. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey on every driver.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}

	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormConfig)
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(gormDB)
	apartmentRepo := repositories.NewApartmentRepository(gormDB)
	roomRepo := repositories.NewRoomRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	matchRepo := repositories.NewMatchRepository(gormDB)
	comparisonRepo := repositories.NewComparisonRepository(gormDB)

	serviceContainer := services.NewServiceContainer(
		userRepo,
		apartmentRepo,
		roomRepo,
		applicationRepo,
		matchRepo,
		comparisonRepo,
	)

	appHandlers := initializeHandlers(serviceContainer)
	authRequired := middleware.AuthMiddleware(userRepo)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, authRequired)

	return ginRouter
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.Auth),
		UserHandler:      handlers.NewUserHandler(baseHandler, services.User),
		ApartmentHandler: handlers.NewApartmentHandler(baseHandler, services.Apartment),
		RoomHandler:      handlers.NewRoomHandler(baseHandler, services.Room),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
