package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-counseling-care/config"
	deliveryHttp "go-counseling-care/internal/delivery/http"
	"go-counseling-care/internal/delivery/http/handler"
	"go-counseling-care/internal/delivery/http/middleware"
	"go-counseling-care/internal/domain/entity"
	"go-counseling-care/internal/infrastructure/cache"
	"go-counseling-care/internal/infrastructure/database"
	"go-counseling-care/internal/repository"
	"go-counseling-care/internal/usecase"
	"go-counseling-care/pkg/jwt"
	"go-counseling-care/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
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

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed the default admin account
	if err := seedAdmin(db, cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedAdmin creates the configured admin account if it does not exist yet.
func seedAdmin(db *gorm.DB, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	userRepo := repository.NewUserRepository()
	existing, err := userRepo.FindByEmail(db, cfg.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Email:    cfg.Email,
		Password: string(hashed),
		FullName: "Administrator",
		RoleID:   entity.RoleIDAdmin,
		IsActive: true,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logrus.Infof("Default admin account created: %s", cfg.Email)
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	moodRepo := repository.NewMoodEntryRepository()
	profileChangeRepo := repository.NewProfileChangeRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	bookingUsecase := usecase.NewAppointmentBookingUsecase(db, log, availabilityRepo, appointmentRepo)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientProfileRepo, jwtService, redisClient)
	patientUsecase := usecase.NewPatientUsecase(db, log, userRepo, patientProfileRepo, availabilityRepo, appointmentRepo, moodRepo, bookingUsecase)
	counselorUsecase := usecase.NewCounselorUsecase(db, log, patientProfileRepo, availabilityRepo, appointmentRepo, moodRepo)
	adminUsecase := usecase.NewAdminUserUsecase(db, log, userRepo, patientProfileRepo, availabilityRepo, appointmentRepo, moodRepo, profileChangeRepo, authUsecase)
	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, patientProfileRepo, profileChangeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	counselorHandler := handler.NewCounselorHandler(counselorUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, patientHandler, counselorHandler, adminHandler, profileHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
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
