package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Supported storage drivers
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		StoragePath     string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		MaxUploadSizeMB int    `yaml:"max_upload_size_mb" env:"SERVER_MAX_UPLOAD_SIZE_MB"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MongoURI        string `yaml:"mongo_uri" env:"MONGO_URI"`
		MongoDatabase   string `yaml:"mongo_database" env:"MONGO_DATABASE"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Jobs struct {
		EligibilityRefreshEnabled  bool   `yaml:"eligibility_refresh_enabled" env:"JOBS_ELIGIBILITY_REFRESH_ENABLED"`
		EligibilityRefreshSchedule string `yaml:"eligibility_refresh_schedule" env:"JOBS_ELIGIBILITY_REFRESH_SCHEDULE"`
	} `yaml:"jobs"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = "10s"
	config.Server.StoragePath = "uploads"
	config.Server.MaxUploadSizeMB = 10

	// Database defaults
	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "facultyhub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MongoURI = "mongodb://localhost:27017"
	config.Database.MongoDatabase = "facultyhub"
	config.Database.MigrationsDir = "migrations"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Job defaults
	config.Jobs.EligibilityRefreshEnabled = true
	config.Jobs.EligibilityRefreshSchedule = "@daily"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return applyEnvOverrides(config, os.LookupEnv)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	config.Database.Driver = strings.ToLower(strings.TrimSpace(config.Database.Driver))

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := time.ParseDuration(config.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown timeout format: %w", err)
	}
	if config.Server.StoragePath == "" {
		return fmt.Errorf("server storage path is required")
	}
	if config.Server.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}

	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid connection max lifetime format: %w", err)
		}
	case DriverMongo:
		if config.Database.MongoURI == "" {
			return fmt.Errorf("mongo URI is required")
		}
		if config.Database.MongoDatabase == "" {
			return fmt.Errorf("mongo database name is required")
		}
	case DriverMemory:
	case "":
		return fmt.Errorf("database driver is required")
	default:
		return fmt.Errorf("unsupported database driver %q (want %s, %s or %s)",
			config.Database.Driver, DriverPostgres, DriverMongo, DriverMemory)
	}

	if config.Jobs.EligibilityRefreshEnabled {
		if _, err := cron.ParseStandard(config.Jobs.EligibilityRefreshSchedule); err != nil {
			return fmt.Errorf("invalid eligibility refresh schedule: %w", err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns the postgres URL with credentials escaped
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadSizeMB) << 20
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production" || c.Server.Mode == "release"
}
