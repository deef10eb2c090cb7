package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ads-dental-admin/config"
	deliveryHttp "ads-dental-admin/internal/delivery/http"
	"ads-dental-admin/internal/delivery/http/handler"
	"ads-dental-admin/internal/delivery/http/middleware"
	domainRepo "ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/infrastructure/backend"
	"ads-dental-admin/internal/infrastructure/cache"
	"ads-dental-admin/internal/infrastructure/storage"
	"ads-dental-admin/internal/repository"
	"ads-dental-admin/internal/service"
	"ads-dental-admin/internal/usecase"
	"ads-dental-admin/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Registry    *prometheus.Registry
	Session     usecase.SessionUsecase
	Handler     http.Handler
	Server      *http.Server
}

// New loads configuration, opens the session storage and wires every layer.
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := NewLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	sessionStorage, redisClient, err := NewSessionStorage(cfg, afero.NewOsFs())
	if err != nil {
		return nil, err
	}

	app := Build(cfg, log, sessionStorage)
	app.RedisClient = redisClient
	return app, nil
}

// NewLogger configures a JSON logrus logger. An unknown level falls back to info.
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// NewSessionStorage opens the configured session store. The Redis client is
// returned so the caller can close it; it is nil for file storage.
func NewSessionStorage(cfg *config.Config, fs afero.Fs) (domainRepo.SessionStorage, *redis.Client, error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return storage.NewRedisStorage(redisClient, cfg.Session.KeyPrefix), redisClient, nil
	case config.SessionStoreFile, "":
		return storage.NewFileStorage(fs, cfg.Session.File), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}

// Build wires repositories, usecases, handlers and the router. It performs
// no I/O.
func Build(cfg *config.Config, log *logrus.Logger, sessionStorage domainRepo.SessionStorage) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize backend gateway
	client := backend.NewClient(cfg.Backend, log, backend.NewMetrics(registry))

	// Initialize repositories
	authRepo := repository.NewAuthRepository(client)
	patientRepo := repository.NewPatientRepository(client)
	dentistRepo := repository.NewDentistRepository(client)
	surgeryRepo := repository.NewSurgeryRepository(client)
	addressRepo := repository.NewAddressRepository(client)
	appointmentRepo := repository.NewAppointmentRepository(client)

	// Initialize services
	auditService := service.NewAuditService(log)

	// Initialize usecases
	sessionUsecase := usecase.NewSessionUsecase(log, authRepo, sessionStorage)
	dashboardUsecase := usecase.NewDashboardUsecase(log, sessionUsecase, patientRepo, dentistRepo, appointmentRepo, surgeryRepo)
	patientUsecase := usecase.NewPatientUsecase(log, sessionUsecase, patientRepo, auditService)
	dentistUsecase := usecase.NewDentistUsecase(log, sessionUsecase, dentistRepo)
	surgeryUsecase := usecase.NewSurgeryUsecase(log, sessionUsecase, surgeryRepo)
	addressUsecase := usecase.NewAddressUsecase(log, sessionUsecase, addressRepo, cfg.App.Locale)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, sessionUsecase, appointmentRepo, auditService)
	appointmentWorkflow := usecase.NewAppointmentWorkflow(
		log,
		customValidator,
		sessionUsecase,
		appointmentRepo,
		patientRepo,
		dentistRepo,
		surgeryRepo,
		auditService,
		appointmentUsecase.Refresh,
	)

	// Nothing loaded for one user may outlive their session
	sessionUsecase.OnSessionChange(func() {
		appointmentWorkflow.Close()
		appointmentUsecase.Forget()
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(sessionUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	referenceHandler := handler.NewReferenceHandler(dentistUsecase, surgeryUsecase, addressUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, appointmentWorkflow)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessionUsecase)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggerMiddleware := middleware.NewLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		dashboardHandler,
		patientHandler,
		referenceHandler,
		appointmentHandler,
		authMiddleware,
		corsMiddleware,
		loggerMiddleware,
		registry,
	)
	httpRouter := router.Setup()

	return &App{
		Config:   cfg,
		Log:      log,
		Registry: registry,
		Session:  sessionUsecase,
		Handler:  httpRouter,
		Server: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.App.Port),
			Handler:           httpRouter,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Restore reinstates a persisted session, if any. Failures are logged; the
// dashboard then starts signed out.
func (app *App) Restore(ctx context.Context) {
	session, err := app.Session.Restore(ctx)
	if err != nil {
		app.Log.Warnf("Failed to restore session: %+v", err)
		return
	}
	if session == nil {
		app.Log.Info("No saved session, starting signed out")
		return
	}
	app.Log.Infof("Restored session for %s", session.User.Username)
}

// Run restores the saved session, starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	app.Restore(context.Background())

	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes the Redis connection, if one was opened
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
