package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/config"
	deliveryHttp "github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http/handler"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http/middleware"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/infrastructure/cache"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/infrastructure/database"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/repository"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/service"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/usecase"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/jwt"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Run schema migrations
	if cfg.DB.Migrate {
		if err := database.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logrus.Info("Database migrations applied")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	vendorRepo := repository.NewVendorRepository()
	bookingRepo := repository.NewBookingRepository()
	bookingItemRepo := repository.NewBookingItemRepository()
	bookingEventRepo := repository.NewBookingEventRepository()
	catalogRepo := repository.NewCatalogRepository()
	offeringRepo := repository.NewVendorOfferingRepository()
	employeeRepo := repository.NewEmployeeRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	eventService := service.NewEventService(log, bookingEventRepo)
	matchingService := service.NewMatchingService(log, vendorRepo, catalogRepo, offeringRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, vendorRepo, jwtService, redisClient)
	managerUsecase := usecase.NewManagerBookingUsecase(db, log, bookingRepo, vendorRepo, employeeRepo, eventService)
	atHomeUsecase := usecase.NewAtHomeAssignmentUsecase(db, log, bookingRepo, bookingItemRepo, vendorRepo, matchingService, eventService)
	vendorUsecase := usecase.NewVendorBookingUsecase(db, log, bookingRepo, bookingItemRepo, vendorRepo, employeeRepo, eventService)
	offeringUsecase := usecase.NewVendorOfferingUsecase(db, log, vendorRepo, catalogRepo, offeringRepo)
	customerUsecase := usecase.NewCustomerBookingUsecase(db, log, bookingRepo, bookingItemRepo, catalogRepo, eventService)
	directoryUsecase := usecase.NewVendorDirectoryUsecase(db, log, vendorRepo)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, catalogRepo)

	// Provision staff accounts before accepting traffic
	if err := authUsecase.SeedStaffUsers(context.Background(), cfg.Seed); err != nil {
		return nil, fmt.Errorf("failed to seed staff users: %w", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	managerHandler := handler.NewManagerBookingHandler(managerUsecase, atHomeUsecase, customValidator)
	vendorHandler := handler.NewVendorBookingHandler(vendorUsecase, customValidator)
	offeringHandler := handler.NewVendorOfferingHandler(offeringUsecase, customValidator)
	customerHandler := handler.NewCustomerBookingHandler(customerUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(directoryUsecase, catalogUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, managerHandler, vendorHandler, offeringHandler, customerHandler, adminHandler, catalogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
