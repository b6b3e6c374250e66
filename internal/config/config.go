package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cuongbtq/jobboard/shared/logger"
	"github.com/cuongbtq/jobboard/shared/postgresql"
	"github.com/cuongbtq/jobboard/shared/rabbitmq"
	"gopkg.in/yaml.v3"
)

const (
	// MinPort is the minimum valid port number
	MinPort = 1
	// MaxPort is the maximum valid port number
	MaxPort = 65535

	// MinJWTSecretLength guards against trivially guessable signing keys
	MinJWTSecretLength = 16
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Logging  LoggingConfig  `yaml:"logging"`
	App      AppConfig      `yaml:"app"`
	Auth     AuthConfig     `yaml:"auth"`
	Worker   WorkerConfig   `yaml:"worker"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Database        string        `yaml:"database"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"`
}

// RabbitMQConfig holds RabbitMQ connection and exchange/queue configuration
type RabbitMQConfig struct {
	Enabled    bool             `yaml:"enabled"`
	Host       string           `yaml:"host"`
	Port       int              `yaml:"port"`
	User       string           `yaml:"user"`
	Password   string           `yaml:"password"`
	VHost      string           `yaml:"vhost"`
	Exchange   ExchangeConfig   `yaml:"exchange"`
	Queue      QueueConfig      `yaml:"queue"`
	RoutingKey string           `yaml:"routing_key"`
	Connection ConnectionConfig `yaml:"connection"`
	Publish    PublishConfig    `yaml:"publish"`
	Consumer   ConsumerConfig   `yaml:"consumer"`
}

// ExchangeConfig holds RabbitMQ exchange configuration
type ExchangeConfig struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Durable bool   `yaml:"durable"`
}

// QueueConfig holds RabbitMQ queue configuration
type QueueConfig struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

// ConnectionConfig holds RabbitMQ connection settings
type ConnectionConfig struct {
	RetryAttempts int           `yaml:"retry_attempts"`
	RetryInterval time.Duration `yaml:"retry_interval"`
	Heartbeat     time.Duration `yaml:"heartbeat"`
}

// PublishConfig holds RabbitMQ publish retry settings
type PublishConfig struct {
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryInterval     time.Duration `yaml:"retry_interval"`
	BackoffMultiplier float64       `yaml:"backoff_multiplier"`
	Timeout           time.Duration `yaml:"timeout"`
}

// ConsumerConfig holds RabbitMQ consumer settings
type ConsumerConfig struct {
	PrefetchCount int `yaml:"prefetch_count"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	Output       string `yaml:"output"`
	EnableCaller bool   `yaml:"enable_caller"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// AuthConfig holds token, password and login throttling settings
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"`
	TokenTTL           time.Duration `yaml:"token_ttl"`
	BcryptCost         int           `yaml:"bcrypt_cost"`
	AccountCacheTTL    time.Duration `yaml:"account_cache_ttl"`
	LoginRatePerMinute float64       `yaml:"login_rate_per_minute"`
	LoginBurst         int           `yaml:"login_burst"`
}

// WorkerConfig holds worker service configuration
type WorkerConfig struct {
	Concurrency     int           `yaml:"concurrency"`
	EventTimeout    time.Duration `yaml:"event_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Load reads and parses the configuration file, then applies
// environment overrides and defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()
	config.applyDefaults()

	return &config, nil
}

// applyEnv lets secrets stay out of the YAML file
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"JWT_SECRET":        &c.Auth.JWTSecret,
		"DATABASE_HOST":     &c.Database.Host,
		"DATABASE_PASSWORD": &c.Database.Password,
		"RABBITMQ_HOST":     &c.RabbitMQ.Host,
		"RABBITMQ_PASSWORD": &c.RabbitMQ.Password,
		"APP_ENVIRONMENT":   &c.App.Environment,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 30 * 24 * time.Hour
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Auth.AccountCacheTTL == 0 {
		c.Auth.AccountCacheTTL = 5 * time.Minute
	}
	if c.Auth.LoginRatePerMinute == 0 {
		c.Auth.LoginRatePerMinute = 10
	}
	if c.Auth.LoginBurst == 0 {
		c.Auth.LoginBurst = 5
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.RabbitMQ.Exchange.Type == "" {
		c.RabbitMQ.Exchange.Type = "topic"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "#"
	}
	if c.RabbitMQ.Publish.Timeout == 0 {
		c.RabbitMQ.Publish.Timeout = 2 * time.Second
	}
	if c.Worker.EventTimeout == 0 {
		c.Worker.EventTimeout = 10 * time.Second
	}
	if c.Worker.ShutdownTimeout == 0 {
		c.Worker.ShutdownTimeout = 30 * time.Second
	}
}

// Validate checks the settings shared by every service
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}

	if c.Database.Port < MinPort || c.Database.Port > MaxPort {
		return fmt.Errorf("invalid database port: %d (must be between %d and %d)", c.Database.Port, MinPort, MaxPort)
	}

	if c.Database.Database == "" {
		return errors.New("database name is required")
	}

	if !c.RabbitMQ.Enabled {
		return nil
	}

	if c.RabbitMQ.Host == "" {
		return errors.New("rabbitmq host is required")
	}

	if c.RabbitMQ.Port < MinPort || c.RabbitMQ.Port > MaxPort {
		return fmt.Errorf("invalid rabbitmq port: %d (must be between %d and %d)", c.RabbitMQ.Port, MinPort, MaxPort)
	}

	if c.RabbitMQ.Exchange.Name == "" {
		return errors.New("rabbitmq exchange name is required")
	}

	return nil
}

// ValidateAPIConfig checks the settings the HTTP service needs
func (c *Config) ValidateAPIConfig() error {
	if c.Server.Port < MinPort || c.Server.Port > MaxPort {
		return fmt.Errorf("invalid server port: %d (must be between %d and %d)", c.Server.Port, MinPort, MaxPort)
	}

	if len(c.Auth.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("jwt secret must be at least %d characters", MinJWTSecretLength)
	}

	if c.Auth.TokenTTL < 0 {
		return errors.New("token ttl must not be negative")
	}

	return c.Validate()
}

// ValidateWorkerConfig checks the settings the activity worker needs
func (c *Config) ValidateWorkerConfig() error {
	if !c.RabbitMQ.Enabled {
		return errors.New("worker requires rabbitmq to be enabled")
	}

	if c.RabbitMQ.Queue.Name == "" {
		return errors.New("rabbitmq queue name is required")
	}

	if c.Worker.Concurrency <= 0 {
		return errors.New("worker concurrency must be greater than 0")
	}

	return c.Validate()
}

// ClientConfig converts the database section for the shared PostgreSQL client
func (c *DatabaseConfig) ClientConfig() *postgresql.Config {
	return &postgresql.Config{
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		Database:        c.Database,
		SSLMode:         c.SSLMode,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
		ConnectTimeout:  c.ConnectTimeout,
	}
}

// ClientConfig converts the rabbitmq section for the shared RabbitMQ client.
// The client declares exchange and queue with a single durability flag.
func (c *RabbitMQConfig) ClientConfig() *rabbitmq.Config {
	return &rabbitmq.Config{
		Host:               c.Host,
		Port:               c.Port,
		User:               c.User,
		Password:           c.Password,
		VHost:              c.VHost,
		ExchangeName:       c.Exchange.Name,
		ExchangeType:       c.Exchange.Type,
		QueueName:          c.Queue.Name,
		RoutingKey:         c.RoutingKey,
		Durable:            c.Exchange.Durable || c.Queue.Durable,
		PrefetchCount:      c.Consumer.PrefetchCount,
		RetryAttempts:      c.Connection.RetryAttempts,
		RetryInterval:      c.Connection.RetryInterval,
		Heartbeat:          c.Connection.Heartbeat,
		PublishRetries:     c.Publish.RetryAttempts,
		PublishRetryDelay:  c.Publish.RetryInterval,
		PublishBackoffMult: c.Publish.BackoffMultiplier,
	}
}

// LoggerConfig converts the logging section for the shared logger
func (c *LoggingConfig) LoggerConfig() *logger.Config {
	return &logger.Config{
		Level:        c.Level,
		Format:       c.Format,
		Output:       c.Output,
		EnableSource: c.EnableCaller,
		TimeFormat:   time.RFC3339,
	}
}
