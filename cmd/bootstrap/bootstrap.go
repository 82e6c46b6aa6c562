package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"student-performance-dashboard/config"
	deliveryHttp "student-performance-dashboard/internal/delivery/http"
	"student-performance-dashboard/internal/delivery/http/handler"
	"student-performance-dashboard/internal/delivery/http/middleware"
	"student-performance-dashboard/internal/domain/entity"
	domainRepo "student-performance-dashboard/internal/domain/repository"
	"student-performance-dashboard/internal/repository"
	"student-performance-dashboard/internal/service"
	"student-performance-dashboard/internal/usecase"
	"student-performance-dashboard/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	Records []entity.StudentRecord
	Server  *http.Server
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
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	// Load the dataset once; it is read-only for the process lifetime
	records, err := LoadDataset(context.Background(), cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	app.Records = records
	logrus.Infof("Loaded %d student records", len(records))

	// Initialize all layers
	server := initializeServer(cfg, records)
	app.Server = server

	return app, nil
}

// LoadDataset reads the student CSV. When the source is unavailable it
// substitutes the built-in fallback dataset with a warning; that condition
// is non-fatal and silently degrades to demo data.
func LoadDataset(ctx context.Context, cfg config.DatasetConfig) ([]entity.StudentRecord, error) {
	studentRepo := repository.NewCSVStudentRepository(cfg.Path)

	records, err := studentRepo.LoadAll(ctx)
	if err != nil {
		if errors.Is(err, domainRepo.ErrDataUnavailable) {
			logrus.Warnf("Dataset %q unavailable, using fallback demo data: %v", cfg.Path, err)
			return repository.FallbackDataset(), nil
		}
		return nil, err
	}

	return records, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, records []entity.StudentRecord) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	chartService := service.NewChartService()

	// Initialize usecases
	dashboardUsecase := usecase.NewDashboardUsecase(log, chartService, records)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, customValidator)
	studentHandler := handler.NewStudentHandler(dashboardUsecase, customValidator)

	// Initialize middleware
	loggerMiddleware := middleware.NewRequestLoggerMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(dashboardHandler, studentHandler, loggerMiddleware, corsMiddleware)
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

	logrus.Info("Server shutdown complete")
}
