package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apistorage "github.com/cuongbtq/jobboard/internal/api/storage"
	"github.com/cuongbtq/jobboard/internal/config"
	"github.com/cuongbtq/jobboard/internal/worker"
	"github.com/cuongbtq/jobboard/internal/worker/storage"
	"github.com/cuongbtq/jobboard/shared/logger"
	"github.com/cuongbtq/jobboard/shared/postgresql"
	"github.com/cuongbtq/jobboard/shared/rabbitmq"
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

	defaultConfigPath := os.Getenv("WORKER_SERVICE_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/worker-service/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ValidateWorkerConfig(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appLogger, err := logger.New(cfg.Logging.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()
	svcLogger := appLogger.With(slog.String("service", cfg.App.Name)).Logger

	svcLogger.Info("Starting worker service",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment),
	)

	dbClient, err := postgresql.Shared(cfg.Database.ClientConfig(), svcLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbClient.Close()

	// The worker may start before the API has created activity_events.
	if err := apistorage.NewStorage(dbClient).Migrate(context.Background()); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	svcLogger.Info("Database connection established")

	rabbitClient, err := rabbitmq.NewClient(cfg.RabbitMQ.ClientConfig(), svcLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize RabbitMQ: %w", err)
	}
	defer rabbitClient.Close()

	svcLogger.Info("RabbitMQ connection established")

	workerInstance := worker.NewWorker(&worker.Config{
		Logger:       svcLogger,
		Store:        storage.NewStorage(dbClient.GetDB(), svcLogger),
		Broker:       rabbitClient,
		Concurrency:  cfg.Worker.Concurrency,
		EventTimeout: cfg.Worker.EventTimeout,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		if err := workerInstance.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	svcLogger.Info("Worker service started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		svcLogger.Info("Received signal, shutting down gracefully",
			slog.String("signal", sig.String()),
		)
	case err := <-errChan:
		svcLogger.Error("Worker error",
			slog.Any("error", err),
		)
		return err
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Worker.ShutdownTimeout)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		workerInstance.Stop()
		close(done)
	}()

	select {
	case <-done:
		svcLogger.Info("Worker stopped gracefully")
	case <-shutdownCtx.Done():
		svcLogger.Warn("Worker shutdown timeout exceeded, forcing exit")
	}

	svcLogger.Info("Worker service shutdown complete")
	return nil
}
