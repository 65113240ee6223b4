package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-admin/config"
	deliveryHttp "clinic-admin/internal/delivery/http"
	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/delivery/web"
	"clinic-admin/internal/infrastructure/cache"
	"clinic-admin/internal/infrastructure/database"
	"clinic-admin/internal/repository"
	"clinic-admin/internal/service"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/jwt"
	"clinic-admin/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	shutdownTimeout = 10 * time.Second
	seedTimeout     = 10 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	Server       *http.Server
	AuditService service.AuditService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App.Env)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logrus.Info("Database schema is up to date")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	if err := app.initializeServer(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(env string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	if env == "development" {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// initializeServer wires repositories, services, use cases and handlers into the HTTP server
func (app *App) initializeServer() error {
	cfg := app.Config
	db := app.DB

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	specialtyRepo := repository.NewSpecialtyRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	app.AuditService = auditService
	lookupCache := service.NewRedisLookupCache(app.RedisClient, cfg.Cache.LookupTTL, log)
	tokenStore := service.NewRedisTokenStore(app.RedisClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, tokenStore, auditService)
	specialtyUsecase := usecase.NewSpecialtyUsecase(log, specialtyRepo, lookupCache, auditService)
	statusUsecase := usecase.NewStatusUsecase(log, statusRepo, lookupCache, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, statusRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, specialtyRepo, statusRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, doctorRepo, specialtyRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	if err := authUsecase.EnsureAdmin(ctx, cfg.Admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, customValidator),
		Specialty:   handler.NewSpecialtyHandler(specialtyUsecase, customValidator),
		Status:      handler.NewStatusHandler(statusUsecase, customValidator),
		Patient:     handler.NewPatientHandler(patientUsecase, customValidator),
		Doctor:      handler.NewDoctorHandler(doctorUsecase, customValidator),
		Appointment: handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		AuditLog:    handler.NewAuditLogHandler(auditLogUsecase, customValidator),
	}
	pages := web.NewPages(web.DefaultTable(), cfg.App.BasePath, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(cfg.App.BasePath, handlers, pages, authMiddleware, corsMiddleware, loggingMiddleware)

	// Create server
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return nil
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

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close flushes pending audit entries and closes connections
func (app *App) Close() {
	if app.AuditService != nil {
		app.AuditService.Stop()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
