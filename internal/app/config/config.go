// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"

	storedomain "github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
)

const (
	defaultPort           = "8080"
	defaultSQLitePath     = "shop.db"
	defaultReportCacheTTL = time.Minute
	// used only when DEBUG is set and SECRET_KEY is not
	debugSecretKey = "insecure-debug-secret"
)

// ErrMissingSecret is returned when SECRET_KEY is unset outside debug mode.
var ErrMissingSecret = errors.New("SECRET_KEY must be set unless DEBUG is enabled")

// Config carries environment-driven settings shared by the shop processes.
type Config struct {
	Port              string
	Debug             bool
	SecretKey         string
	PostgresDSN       string
	SQLitePath        string
	RedisURL          string
	ReportCacheTTL    time.Duration
	StockPolicy       storedomain.StockPolicy
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// Load reads a .env file from the working directory when present, then the
// environment, applies defaults, and validates the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if val := strings.TrimSpace(getenv(key)); val != "" {
			return val
		}
		return fallback
	}
	cfg := Config{
		Port:              env("PORT", defaultPort),
		Debug:             isTruthy(getenv("DEBUG")),
		SecretKey:         strings.TrimSpace(getenv("SECRET_KEY")),
		PostgresDSN:       strings.TrimSpace(getenv("POSTGRES_DSN")),
		SQLitePath:        env("SQLITE_PATH", defaultSQLitePath),
		RedisURL:          strings.TrimSpace(getenv("REDIS_URL")),
		ReportCacheTTL:    defaultReportCacheTTL,
		TemporalAddress:   env("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: env("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(getenv("TEMPORAL_DISABLED")),
	}
	if raw := strings.TrimSpace(getenv("REPORT_CACHE_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("REPORT_CACHE_TTL must be a positive duration such as 30s or 5m")
		}
		cfg.ReportCacheTTL = ttl
	}
	policy, err := storedomain.ParseStockPolicy(getenv("ORDER_STOCK_POLICY"))
	if err != nil {
		return Config{}, fmt.Errorf("ORDER_STOCK_POLICY: %w", err)
	}
	cfg.StockPolicy = policy
	if cfg.SecretKey == "" {
		if !cfg.Debug {
			return Config{}, ErrMissingSecret
		}
		cfg.SecretKey = debugSecretKey
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
