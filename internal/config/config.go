package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Boards      BoardsConfig
	LLM         LLMConfig
	SMTP        SMTPConfig
	Aggregation AggregationConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type AuthConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// BoardsConfig holds per-board credentials. A board with missing
// credentials is skipped during aggregation, not treated as an error.
type BoardsConfig struct {
	AdzunaAppID    string
	AdzunaAppKey   string
	AdzunaCountry  string
	USAJobsAPIKey  string
	USAJobsAgent   string
	RemotiveOn     bool
	TheMuseOn      bool
	CareersTargets string
}

type LLMConfig struct {
	Provider  string // "anthropic", "openai" or "" for template-only kits
	APIKey    string
	Model     string
	MaxTokens int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type AggregationConfig struct {
	Workers          int
	RateLimitRPS     int
	FreshnessMinutes int
	PerBoardCap      int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT_SECONDS", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_SECONDS", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_SECONDS", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      optDuration("REDIS_TTL", 600*time.Second),
	}

	cfg.Auth = AuthConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_SECONDS", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_SECONDS", 7*24*time.Hour),
	}

	cfg.Boards = BoardsConfig{
		AdzunaAppID:    opt("ADZUNA_APP_ID"),
		AdzunaAppKey:   opt("ADZUNA_APP_KEY"),
		AdzunaCountry:  defaultString(opt("ADZUNA_COUNTRY"), "us"),
		USAJobsAPIKey:  opt("USAJOBS_API_KEY"),
		USAJobsAgent:   opt("USAJOBS_USER_AGENT"),
		RemotiveOn:     optBool("REMOTIVE_ENABLED", true),
		TheMuseOn:      optBool("THEMUSE_ENABLED", true),
		CareersTargets: opt("CAREERS_TARGETS"),
	}

	cfg.LLM = LLMConfig{
		Provider:  strings.ToLower(opt("LLM_PROVIDER")),
		APIKey:    opt("LLM_API_KEY"),
		Model:     opt("LLM_MODEL"),
		MaxTokens: optInt("LLM_MAX_TOKENS", 1024),
	}

	cfg.SMTP = SMTPConfig{
		Host:     opt("SMTP_HOST"),
		Port:     optInt("SMTP_PORT", 587),
		Username: opt("SMTP_USERNAME"),
		Password: opt("SMTP_PASSWORD"),
		From:     opt("SMTP_FROM"),
	}

	cfg.Aggregation = AggregationConfig{
		Workers:          optInt("AGGREGATION_WORKERS", 4),
		RateLimitRPS:     optInt("AGGREGATION_RATE_LIMIT_RPS", 4),
		FreshnessMinutes: optInt("AGGREGATION_FRESHNESS_MINUTES", 30),
		PerBoardCap:      optInt("AGGREGATION_PER_BOARD_CAP", 100),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
