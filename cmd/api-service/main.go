package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cuongbtq/jobboard/internal/api/auth"
	"github.com/cuongbtq/jobboard/internal/api/events"
	"github.com/cuongbtq/jobboard/internal/api/handler"
	"github.com/cuongbtq/jobboard/internal/api/router"
	"github.com/cuongbtq/jobboard/internal/api/service"
	"github.com/cuongbtq/jobboard/internal/api/storage"
	"github.com/cuongbtq/jobboard/internal/config"
	"github.com/cuongbtq/jobboard/shared/logger"
	"github.com/cuongbtq/jobboard/shared/postgresql"
	"github.com/cuongbtq/jobboard/shared/rabbitmq"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or flags")
	}

	defaultConfigPath := os.Getenv("API_SERVICE_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/api-service/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ValidateAPIConfig(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appLogger, err := logger.New(cfg.Logging.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()
	svcLogger := appLogger.With(slog.String("service", cfg.App.Name)).Logger

	svcLogger.Info("Starting API service",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment),
	)

	dbClient, err := postgresql.Shared(cfg.Database.ClientConfig(), svcLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbClient.Close()

	store := storage.NewStorage(dbClient)
	if err := store.Migrate(context.Background()); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	svcLogger.Info("Database connection established")

	publisher, rabbitClient, err := initPublisher(cfg, svcLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize RabbitMQ: %w", err)
	}
	if rabbitClient != nil {
		defer rabbitClient.Close()
	}

	r := initRouter(cfg, svcLogger, dbClient, store, publisher)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	svcLogger.Info("Starting HTTP server",
		slog.String("address", addr),
		slog.Duration("read_timeout", cfg.Server.ReadTimeout),
		slog.Duration("write_timeout", cfg.Server.WriteTimeout),
	)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		svcLogger.Info("Shutting down server...", slog.String("signal", sig.String()))
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		svcLogger.Error("Server forced to shutdown",
			slog.Any("error", err),
		)
		return err
	}

	// in-flight activity events finish before the broker connection closes
	if p, ok := publisher.(*events.Publisher); ok {
		p.Wait()
	}

	svcLogger.Info("Server shutdown complete")
	return nil
}

// initPublisher connects to RabbitMQ when enabled; otherwise activity events are dropped
func initPublisher(cfg *config.Config, logger *slog.Logger) (service.EventPublisher, *rabbitmq.Client, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Warn("RabbitMQ disabled, activity events will not be recorded")
		return events.Discard{}, nil, nil
	}

	client, err := rabbitmq.NewClient(cfg.RabbitMQ.ClientConfig(), logger)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("RabbitMQ connection established")
	return events.NewPublisher(client, logger, cfg.RabbitMQ.Publish.Timeout), client, nil
}

// initRouter wires storage, services and handlers into the Gin router
func initRouter(cfg *config.Config, logger *slog.Logger, dbClient *postgresql.Client, store *storage.Storage, publisher service.EventPublisher) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	accounts := storage.NewCachedAccounts(store, cfg.Auth.AccountCacheTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	handlerDeps := &handler.Dependencies{
		Logger:       logger,
		Config:       cfg,
		DB:           dbClient,
		Auth:         service.NewAuthService(accounts, hasher, tokens, publisher, logger),
		Jobs:         service.NewJobService(store, store, publisher, logger),
		Applications: service.NewApplicationService(store, store, publisher, logger),
		Admin:        service.NewAdminService(store),
	}

	return router.SetupRouter(handlerDeps)
}
