package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		filePath  string
		wantErr   bool
		errString string
	}{
		{
			name:     "valid config file",
			filePath: "testdata/valid_config.yaml",
			wantErr:  false,
		},
		{
			name:      "non-existent file",
			filePath:  "testdata/nonexistent.yaml",
			wantErr:   true,
			errString: "failed to read config file",
		},
		{
			name:      "malformed yaml",
			filePath:  "testdata/malformed.yaml",
			wantErr:   true,
			errString: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.filePath)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			assert.Equal(t, 8080, cfg.Server.Port)
			assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
			assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
			assert.Equal(t, "localhost", cfg.Database.Host)
			assert.Equal(t, "jobboard", cfg.Database.Database)
			assert.Equal(t, "jobboard.activity", cfg.RabbitMQ.Exchange.Name)
			assert.Equal(t, "jobboard.activity.log", cfg.RabbitMQ.Queue.Name)
			assert.Equal(t, "jobboard-api", cfg.App.Name)
			assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL)
			assert.Equal(t, 4, cfg.Worker.Concurrency)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Auth.AccountCacheTTL)
	assert.Equal(t, float64(10), cfg.Auth.LoginRatePerMinute)
	assert.Equal(t, 5, cfg.Auth.LoginBurst)
	assert.Equal(t, 2*time.Second, cfg.RabbitMQ.Publish.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Worker.ShutdownTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-environment-0123456789")
	t.Setenv("DATABASE_PASSWORD", "s3cret")
	t.Setenv("RABBITMQ_PASSWORD", "")

	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "from-environment-0123456789", cfg.Auth.JWTSecret)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	// empty values leave the file setting alone
	assert.Equal(t, "guest", cfg.RabbitMQ.Password)
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			Database: "jobboard",
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  true,
			Host:     "localhost",
			Port:     5672,
			Exchange: ExchangeConfig{Name: "jobboard.activity"},
			Queue:    QueueConfig{Name: "jobboard.activity.log"},
		},
		Auth:   AuthConfig{JWTSecret: "0123456789abcdef"},
		Worker: WorkerConfig{Concurrency: 2},
	}
}

func TestConfig_ValidateAPIConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errString string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "rabbitmq disabled skips broker checks", mutate: func(c *Config) {
			c.RabbitMQ = RabbitMQConfig{}
		}},
		{name: "invalid server port - too low", mutate: func(c *Config) { c.Server.Port = 0 }, errString: "invalid server port"},
		{name: "invalid server port - too high", mutate: func(c *Config) { c.Server.Port = 70000 }, errString: "invalid server port"},
		{name: "short jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, errString: "jwt secret must be at least"},
		{name: "negative token ttl", mutate: func(c *Config) { c.Auth.TokenTTL = -time.Hour }, errString: "token ttl"},
		{name: "empty database host", mutate: func(c *Config) { c.Database.Host = "" }, errString: "database host is required"},
		{name: "invalid database port", mutate: func(c *Config) { c.Database.Port = 0 }, errString: "invalid database port"},
		{name: "empty database name", mutate: func(c *Config) { c.Database.Database = "" }, errString: "database name is required"},
		{name: "empty rabbitmq host", mutate: func(c *Config) { c.RabbitMQ.Host = "" }, errString: "rabbitmq host is required"},
		{name: "empty exchange name", mutate: func(c *Config) { c.RabbitMQ.Exchange.Name = "" }, errString: "rabbitmq exchange name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.ValidateAPIConfig()

			if tt.errString != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateWorkerConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errString string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "server port not required", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "rabbitmq disabled", mutate: func(c *Config) { c.RabbitMQ.Enabled = false }, errString: "requires rabbitmq"},
		{name: "empty queue name", mutate: func(c *Config) { c.RabbitMQ.Queue.Name = "" }, errString: "rabbitmq queue name is required"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Worker.Concurrency = 0 }, errString: "concurrency must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.ValidateWorkerConfig()

			if tt.errString != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoad_ValidateIntegration(t *testing.T) {
	t.Run("load and validate valid config", func(t *testing.T) {
		cfg, err := Load("testdata/valid_config.yaml")
		require.NoError(t, err)

		require.NoError(t, cfg.ValidateAPIConfig())
		require.NoError(t, cfg.ValidateWorkerConfig())
	})

	t.Run("load config with invalid port", func(t *testing.T) {
		cfg, err := Load("testdata/invalid_port.yaml")
		require.NoError(t, err)

		err = cfg.ValidateAPIConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})

	t.Run("load config with missing database", func(t *testing.T) {
		cfg, err := Load("testdata/missing_database.yaml")
		require.NoError(t, err)

		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database name is required")
	})
}

func TestClientConfigs(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	db := cfg.Database.ClientConfig()
	assert.Equal(t, cfg.Database.Host, db.Host)
	assert.Equal(t, cfg.Database.Database, db.Database)
	assert.Equal(t, cfg.Database.MaxOpenConns, db.MaxOpenConns)

	mq := cfg.RabbitMQ.ClientConfig()
	assert.Equal(t, "jobboard.activity", mq.ExchangeName)
	assert.Equal(t, "topic", mq.ExchangeType)
	assert.Equal(t, "jobboard.activity.log", mq.QueueName)
	assert.Equal(t, "#", mq.RoutingKey)

	lg := cfg.Logging.LoggerConfig()
	assert.Equal(t, cfg.Logging.Level, lg.Level)
	assert.Equal(t, cfg.Logging.EnableCaller, lg.EnableSource)
}
