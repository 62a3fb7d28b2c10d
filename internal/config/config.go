package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Logging    LoggingConfig
	Chat       ChatConfig
	OpenAI     OpenAIConfig
	Payment    PaymentConfig
	Email      EmailConfig
	Admin      AdminConfig
	RateLimit  RateLimitConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, takes precedence over the parts
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	Enabled            bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
	StaticDir      string
	Version        string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// ChatConfig holds chat assistant configuration
type ChatConfig struct {
	CatalogPath string // empty means the bundled intent catalog
	AIAssist    bool   // ask the LLM when the rule engine falls back
	LogMessages bool
}

// OpenAIConfig holds OpenAI-compatible API configuration
type OpenAIConfig struct {
	APIKey          string
	APIBase         string
	ChatModel       string
	ChatTemperature float64
	ChatMaxTokens   int
	Timeout         int
	Enabled         bool
}

// PaymentConfig holds payment provider configuration
type PaymentConfig struct {
	StripeSecretKey string
	Currency        string
}

// EmailConfig holds transactional email configuration
type EmailConfig struct {
	ResendAPIKey string
	From         string
	AdminInbox   string
	SiteURL      string
}

// AdminConfig holds admin dashboard credentials
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt
	JWTSecret    string
	TokenTTL     time.Duration
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	openAIKey := getEnv("OPENAI_API_KEY", "")

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "chefweb"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
			Enabled:            getEnvAsBool("PG_ENABLED", true),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("PORT", getEnvAsInt("SERVER_PORT", 8080)),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PATCH,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
			StaticDir:      getEnv("STATIC_DIR", "web/dist"),
			Version:        getEnv("APP_VERSION", "dev"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Chat: ChatConfig{
			CatalogPath: getEnv("CHAT_CATALOG_PATH", ""),
			AIAssist:    getEnvAsBool("CHAT_AI_ASSIST", true),
			LogMessages: getEnvAsBool("CHAT_LOG_MESSAGES", true),
		},
		OpenAI: OpenAIConfig{
			APIKey:          openAIKey,
			APIBase:         getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:       getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			ChatTemperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.3),
			ChatMaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 300),
			Timeout:         getEnvAsInt("OPENAI_TIMEOUT", 10),
			Enabled:         openAIKey != "",
		},
		Payment: PaymentConfig{
			StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			Currency:        strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "ChefWeb <bookings@chefweb.local>"),
			AdminInbox:   getEnv("ADMIN_INBOX", ""),
			SiteURL:      getEnv("SITE_URL", "http://localhost:8080"),
		},
		Admin: AdminConfig{
			Email:        strings.ToLower(getEnv("ADMIN_EMAIL", "")),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
			TokenTTL:     getEnvAsDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
			Burst:     getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that cannot be defaulted
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Admin.PasswordHash != "" && c.Admin.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when ADMIN_PASSWORD_HASH is set")
	}
	if c.RateLimit.PerMinute < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit values must not be negative")
	}
	return nil
}

// AdminEnabled reports whether admin login is configured
func (c *Config) AdminEnabled() bool {
	return c.Admin.Email != "" && c.Admin.PasswordHash != "" && c.Admin.JWTSecret != ""
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid bool value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return value
}
