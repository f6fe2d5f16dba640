package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Redis        RedisConfig
	Translations TranslationsConfig
	Uploads      UploadsConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
	MigrationsDir   string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	JWTSecret   string
	TokenTTLMin int
}

// RedisConfig holds the optional token revocation store configuration.
// When disabled, logout still clears the client token but revocation
// is not tracked server-side.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// TranslationsConfig holds configuration for loading translation
// bundles at startup. Bundles can live on S3 with a local fallback.
type TranslationsConfig struct {
	BundleDir string
	S3Enabled bool
	S3Bucket  string
	S3Region  string
	S3Prefix  string
}

// UploadsConfig holds the base URL image paths are resolved against.
type UploadsConfig struct {
	BaseURL string
}

// Load loads configuration from environment variables. A .env file in
// the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "shopfront"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			MigrationsDir:   getEnv("DB_MIGRATIONS_DIR", "migrations"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			TokenTTLMin: getEnvAsInt("JWT_TTL_MINUTES", 24*60),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Translations: TranslationsConfig{
			BundleDir: getEnv("TRANSLATIONS_DIR", "translations"),
			S3Enabled: getEnvAsBool("TRANSLATIONS_S3_ENABLED", false),
			S3Bucket:  getEnv("TRANSLATIONS_S3_BUCKET", ""),
			S3Region:  getEnv("TRANSLATIONS_S3_REGION", "us-east-1"),
			S3Prefix:  getEnv("TRANSLATIONS_S3_PREFIX", "translations/"),
		},
		Uploads: UploadsConfig{
			BaseURL: getEnv("UPLOADS_BASE_URL", "/uploads"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.Auth.TokenTTLMin < 1 {
		return fmt.Errorf("token TTL must be at least 1 minute")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis address is required when redis is enabled")
	}

	if c.Translations.S3Enabled {
		if c.Translations.S3Bucket == "" {
			return fmt.Errorf("S3 bucket is required when translation S3 loading is enabled")
		}
		if c.Translations.S3Region == "" {
			return fmt.Errorf("S3 region is required when translation S3 loading is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
