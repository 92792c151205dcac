package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App        AppConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Logger     LoggerConfig
	Session    SessionConfig
	Admin      AdminConfig
	Email      EmailConfig
	Extraction ExtractionConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values. The DSN carries the elevated
// service credentials; ownership checks happen in the services before any
// write goes through this pool.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SessionConfig defines how bearer tokens are exchanged for identities.
// When JWTSecret is set tokens are verified locally; otherwise the remote
// session store is queried per token.
type SessionConfig struct {
	JWTSecret           string
	StoreURL            string
	StoreAPIKey         string
	VerifyTimeoutSec    int
	IdentityCacheTTLSec int
}

// AdminConfig carries the administrator allow-list.
type AdminConfig struct {
	Emails []string
}

// EmailConfig configures the transactional email provider.
type EmailConfig struct {
	AWSRegion string
	FromEmail string
	ReplyTo   string
}

// ExtractionConfig points at the generative extraction endpoint.
type ExtractionConfig struct {
	EndpointURL string
	APIKey      string
	TimeoutSec  int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connMaxIdle := int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "sublease-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			RunMigrations:  runMigrations,
			ConnMaxIdleSec: connMaxIdle,
			ConnMaxLifeSec: connMaxLife,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			JWTSecret:           os.Getenv("SESSION_JWT_SECRET"),
			StoreURL:            os.Getenv("SESSION_STORE_URL"),
			StoreAPIKey:         os.Getenv("SESSION_STORE_API_KEY"),
			VerifyTimeoutSec:    getEnvAsInt("SESSION_VERIFY_TIMEOUT_SECONDS", 10),
			IdentityCacheTTLSec: getEnvAsInt("SESSION_IDENTITY_CACHE_TTL_SECONDS", 60),
		},
		Admin: AdminConfig{
			Emails: splitList(os.Getenv("ADMIN_EMAILS")),
		},
		Email: EmailConfig{
			AWSRegion: getEnv("SES_AWS_REGION", "us-east-1"),
			FromEmail: os.Getenv("SES_FROM_EMAIL"),
			ReplyTo:   os.Getenv("SES_REPLY_TO"),
		},
		Extraction: ExtractionConfig{
			EndpointURL: os.Getenv("EXTRACTION_ENDPOINT_URL"),
			APIKey:      os.Getenv("EXTRACTION_API_KEY"),
			TimeoutSec:  getEnvAsInt("EXTRACTION_TIMEOUT_SECONDS", 30),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(val string) []string {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
