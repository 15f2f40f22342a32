// Package main is the entrypoint for the Fakecar API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/DanielOuteiro/fakecar-api/api"
	"github.com/DanielOuteiro/fakecar-api/internal/config"
	"github.com/DanielOuteiro/fakecar-api/internal/generator"
	"github.com/DanielOuteiro/fakecar-api/internal/handler"
	"github.com/DanielOuteiro/fakecar-api/internal/metrics"
	"github.com/DanielOuteiro/fakecar-api/internal/middleware"
	"github.com/DanielOuteiro/fakecar-api/internal/server"
	"github.com/DanielOuteiro/fakecar-api/internal/service"
	"github.com/DanielOuteiro/fakecar-api/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Assemble the domain: store, telemetry generator, code generator.
	userStore := store.New()
	carGen := generator.New(cfg.RandomSeed)

	var codes generator.CodeGenerator = generator.FixedCodes{}
	if cfg.UserCodeMode == config.UserCodeModeUnique {
		codes = generator.ULIDCodes{}
	}

	recorder := metrics.NewInMemory()
	userService := service.NewUserService(userStore, carGen, codes, recorder)

	// Seed the store before the server accepts requests.
	seedUser, err := userService.Seed(ctx)
	if err != nil {
		logger.Error("failed to seed store", "error", err)
		os.Exit(1)
	}
	logger.Info("store seeded", "code", seedUser.Code, "name", seedUser.Name)

	// Load the OpenAPI document that backs request validation.
	doc, err := api.Load(ctx)
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}

	validator, err := middleware.NewSchemaValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build schema validator", "error", err)
		os.Exit(1)
	}

	h := handler.New()
	healthHandler := handler.NewHealthHandler(userStore)
	metricsHandler := handler.NewMetricsHandler(recorder)
	userHandler := handler.NewUserHandler(userService, logger)

	r := setupRouter(h, healthHandler, metricsHandler, userHandler, validator, cfg, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"user_code_mode", cfg.UserCodeMode,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	metricsHandler *handler.MetricsHandler,
	userHandler *handler.UserHandler,
	validator *middleware.SchemaValidator,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = origins
		r.Use(middleware.CORS(corsCfg))
	}

	r.Use(validator.Middleware())

	// Operational endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)
	r.Get("/", h.Root)

	// User endpoints
	r.Post("/users/create", userHandler.Create)
	r.Get("/users", userHandler.List)
	r.Get("/users/{code}", userHandler.Get)
	r.Put("/users/{code}/car/update", userHandler.UpdateCar)

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
