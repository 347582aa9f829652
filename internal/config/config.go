package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Retry    RetryConfig
	Audit    AuditConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds PostgreSQL settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds the audit event sink settings. An empty Host disables
// Redis publishing entirely.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Stream   string
}

// CacheConfig bounds the availability cache.
type CacheConfig struct {
	TTL  time.Duration
	Size int
}

// RetryConfig parameterizes the booking conflict retry policy.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// AuditConfig sizes the recorder's hand-off buffer.
type AuditConfig struct {
	BufferSize int
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "flight_reservation"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			Stream:   getEnv("AUDIT_STREAM", "audit:bookings"),
		},
		Cache: CacheConfig{
			TTL:  getDurationEnv("CACHE_TTL", 30*time.Second),
			Size: getIntEnv("CACHE_SIZE", 1024),
		},
		Retry: RetryConfig{
			MaxAttempts: getIntEnv("RETRY_MAX_ATTEMPTS", 3),
			BaseDelay:   getDurationEnv("RETRY_BASE_DELAY", 100*time.Millisecond),
			Multiplier:  getFloatEnv("RETRY_MULTIPLIER", 2.0),
		},
		Audit: AuditConfig{
			BufferSize: getIntEnv("AUDIT_BUFFER_SIZE", 256),
		},
	}
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" port=" + c.Port +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.DBName +
		" sslmode=" + c.SSLMode
}

// Addr returns the Redis connection address.
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Enabled reports whether an audit event sink is configured.
func (c *RedisConfig) Enabled() bool {
	return c.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
