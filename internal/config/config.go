// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Coupons  CouponConfig
	Session  SessionConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// StorageConfig selects the key-value backend that plays the role of
// browser local storage.
type StorageConfig struct {
	Backend   string // "memory" or "redis"
	KeyPrefix string
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// DatabaseConfig contains database connection configuration. It is only
// used when the catalog is fed from Postgres.
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// CatalogConfig contains product listing configuration
type CatalogConfig struct {
	Source            string // "static", "yaml", "xlsx" or "postgres"
	Path              string
	DefaultPageSize   int
	PageSizeOptions   []int
	SuggestionLimit   int
	SearchDebounce    time.Duration
	PriceDebounce     time.Duration
	SuggestDebounce   time.Duration
	RecommendationMax int
}

// CouponConfig holds the static code -> rate table
type CouponConfig struct {
	Codes map[string]decimal.Decimal
}

// SessionConfig contains browser session token configuration
type SessionConfig struct {
	Secret     string
	TokenTTL   time.Duration
	CookieName string
	IdleTTL    time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

const defaultCoupons = "B3B0T4CT37:0.99,1L0V3UC:0.01"

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	coupons, err := parseCoupons(getEnv("COUPON_CODES", defaultCoupons))
	if err != nil {
		return nil, fmt.Errorf("invalid COUPON_CODES: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "PawTopia Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:           getEnv("APP_PORT", "8080"),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getEnvAsDuration("SERVER_REQUEST_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", "memory"),
			KeyPrefix: getEnv("STORAGE_KEY_PREFIX", "pawtopia"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "pawtopia"),
			User:         getEnv("DB_USER", "pawtopia"),
			Password:     getEnv("DB_PASSWORD", "pawtopia"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 300*time.Second),
		},
		Catalog: CatalogConfig{
			Source:            getEnv("CATALOG_SOURCE", "static"),
			Path:              getEnv("CATALOG_PATH", ""),
			DefaultPageSize:   getEnvAsInt("CATALOG_PAGE_SIZE", 12),
			PageSizeOptions:   getEnvAsIntSlice("CATALOG_PAGE_SIZE_OPTIONS", []int{12, 24, 48}),
			SuggestionLimit:   getEnvAsInt("CATALOG_SUGGESTION_LIMIT", 8),
			SearchDebounce:    getEnvAsDuration("CATALOG_SEARCH_DEBOUNCE", 150*time.Millisecond),
			PriceDebounce:     getEnvAsDuration("CATALOG_PRICE_DEBOUNCE", 150*time.Millisecond),
			SuggestDebounce:   getEnvAsDuration("CATALOG_SUGGEST_DEBOUNCE", 120*time.Millisecond),
			RecommendationMax: getEnvAsInt("CATALOG_RECOMMENDATIONS", 6),
		},
		Coupons: CouponConfig{
			Codes: coupons,
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "pawtopia-dev-session-secret-change-me"),
			TokenTTL:   getEnvAsDuration("SESSION_TOKEN_TTL", 30*24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE", "pt_session"),
			IdleTTL:    getEnvAsDuration("SESSION_IDLE_TTL", 2*time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 300),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5500"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-Tab-ID", "X-Request-ID"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters long")
	}

	switch c.Storage.Backend {
	case "memory":
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis storage backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	switch c.Catalog.Source {
	case "static":
	case "yaml", "xlsx":
		if c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_PATH is required for the %s catalog source", c.Catalog.Source)
		}
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the postgres catalog source")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}

	if c.Catalog.DefaultPageSize <= 0 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}

	for code, rate := range c.Coupons.Codes {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("coupon %s has rate %s outside [0,1]", code, rate)
		}
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// parseCoupons reads "CODE:rate,CODE:rate" into an upper-cased table.
func parseCoupons(raw string) (map[string]decimal.Decimal, error) {
	codes := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, rate, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("entry %q is not CODE:rate", pair)
		}
		value, err := decimal.NewFromString(strings.TrimSpace(rate))
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", pair, err)
		}
		codes[strings.ToUpper(strings.TrimSpace(code))] = value
	}
	return codes, nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func getEnvAsIntSlice(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []int
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return defaultValue
		}
		out = append(out, n)
	}
	return out
}
