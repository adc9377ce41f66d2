package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management-core/config"
	deliveryHttp "hospital-management-core/internal/delivery/http"
	"hospital-management-core/internal/delivery/http/handler"
	"hospital-management-core/internal/delivery/http/middleware"
	domainRepo "hospital-management-core/internal/domain/repository"
	"hospital-management-core/internal/repository"
	"hospital-management-core/internal/service"
	"hospital-management-core/internal/session"
	"hospital-management-core/internal/usecase"
	"hospital-management-core/pkg/jwt"
	"hospital-management-core/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	State  *session.Session
	Server *http.Server
}

// repositories bundles the five record stores so the wiring stays readable.
type repositories struct {
	admin      domainRepo.AdminRepository
	doctor     domainRepo.DoctorRepository
	patient    domainRepo.PatientRepository
	discharged domainRepo.DischargedPatientRepository
	log        domainRepo.AppointmentLogRepository
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

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repos := repositories{
		admin:      repository.NewAdminRepository(cfg.Data.Dir),
		doctor:     repository.NewDoctorRepository(cfg.Data.Dir),
		patient:    repository.NewPatientRepository(cfg.Data.Dir),
		discharged: repository.NewDischargedPatientRepository(cfg.Data.Dir),
		log:        repository.NewAppointmentLogRepository(cfg.Data.Dir),
	}

	// Load the session: bootstraps default records on first run, links
	// assigned patients to their doctors, replays the appointment log.
	state, err := session.Load(repos.admin, repos.doctor, repos.patient, repos.discharged, repos.log)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	app.State = state
	logrus.Infof("Records loaded: %d doctors, %d active patients, %d discharged",
		len(state.Doctors), len(state.Patients), len(state.Discharged))

	// Initialize all layers
	app.Server = initializeServer(cfg, state, repos)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, state *session.Session, repos repositories) *http.Server {
	// Initialize JWT service and token registry
	jwtService := jwt.NewJWTService(cfg.JWT)
	tokens := service.NewTokenRegistry()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(state, log, repos.admin, repos.doctor, jwtService, tokens)
	doctorUsecase := usecase.NewDoctorUsecase(state, log, repos.doctor, repos.patient)
	patientUsecase := usecase.NewPatientUsecase(state, log, repos.patient, repos.discharged)
	assignmentUsecase := usecase.NewAssignmentUsecase(state, log, repos.patient, repos.log)
	reportUsecase := usecase.NewReportUsecase(state, log, repos.log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	assignmentHandler := handler.NewAssignmentHandler(assignmentUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokens)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, doctorHandler, patientHandler, assignmentHandler, reportHandler, authMiddleware, corsMiddleware)
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
