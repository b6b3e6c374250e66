package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/cuongbtq/jobboard/internal/api/auth"
	"github.com/cuongbtq/jobboard/internal/api/storage"
	"github.com/cuongbtq/jobboard/internal/config"
	"github.com/cuongbtq/jobboard/internal/seed"
	"github.com/cuongbtq/jobboard/shared/logger"
	"github.com/cuongbtq/jobboard/shared/postgresql"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
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

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appLogger, err := logger.New(cfg.Logging.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	dbClient, err := postgresql.Shared(cfg.Database.ClientConfig(), appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbClient.Close()

	ctx := context.Background()

	store := storage.NewStorage(dbClient)
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	result, err := seed.New(store, auth.NewPasswordHasher(cfg.Auth.BcryptCost), appLogger.Logger).Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	appLogger.Info("Demo credentials",
		slog.String("admin", "admin@test.com / admin123"),
		slog.String("job_seeker", "jobseeker@test.com / password123"),
		slog.String("employer", "employer@test.com / password123"),
		slog.Int("accounts_created", result.Accounts),
	)
	return nil
}
