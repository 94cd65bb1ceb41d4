package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port               string
	DBURL              string
	ReadTimeoutSecs    int
	WriteTimeoutSecs   int
	IdleTimeoutSecs    int
	RequestTimeoutSecs int
	DBMaxConns         int
	DBMinConns         int
	DBMaxIdleSecs      int
	DBMaxLifeSecs      int
	DBConnTimeoutSecs  int
	DBStatementCache   int
	LogLevel           string
	LogFormat          string
	MetricsEnabled     bool
}

var defaults = map[string]any{
	"PORT":                        "8080",
	"SERVER_READ_TIMEOUT":         15,
	"SERVER_WRITE_TIMEOUT":        15,
	"SERVER_IDLE_TIMEOUT":         60,
	"SERVER_REQUEST_TIMEOUT":      30,
	"DB_MAX_CONNS":                20,
	"DB_MIN_CONNS":                2,
	"DB_MAX_CONN_IDLE_SECS":       300,
	"DB_MAX_CONN_LIFETIME_SECS":   3600,
	"DB_CONN_TIMEOUT_SECS":        10,
	"DB_STATEMENT_CACHE_CAPACITY": 256,
	"LOG_LEVEL":                   "info",
	"LOG_FORMAT":                  "json",
	"METRICS_ENABLED":             true,
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	// DB_URL has no default; bind it so AutomaticEnv picks it up.
	if err := v.BindEnv("DB_URL"); err != nil {
		return Config{}, fmt.Errorf("bind DB_URL: %w", err)
	}
	v.AutomaticEnv()

	cfg := Config{
		Port:               v.GetString("PORT"),
		DBURL:              v.GetString("DB_URL"),
		ReadTimeoutSecs:    v.GetInt("SERVER_READ_TIMEOUT"),
		WriteTimeoutSecs:   v.GetInt("SERVER_WRITE_TIMEOUT"),
		IdleTimeoutSecs:    v.GetInt("SERVER_IDLE_TIMEOUT"),
		RequestTimeoutSecs: v.GetInt("SERVER_REQUEST_TIMEOUT"),
		DBMaxConns:         v.GetInt("DB_MAX_CONNS"),
		DBMinConns:         v.GetInt("DB_MIN_CONNS"),
		DBMaxIdleSecs:      v.GetInt("DB_MAX_CONN_IDLE_SECS"),
		DBMaxLifeSecs:      v.GetInt("DB_MAX_CONN_LIFETIME_SECS"),
		DBConnTimeoutSecs:  v.GetInt("DB_CONN_TIMEOUT_SECS"),
		DBStatementCache:   v.GetInt("DB_STATEMENT_CACHE_CAPACITY"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
		MetricsEnabled:     v.GetBool("METRICS_ENABLED"),
	}

	if cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}
	if cfg.RequestTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_REQUEST_TIMEOUT must be positive")
	}
	if cfg.DBMaxConns <= 0 {
		return Config{}, fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if cfg.DBMinConns < 0 {
		return Config{}, fmt.Errorf("DB_MIN_CONNS must be non-negative")
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return Config{}, fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	if cfg.DBStatementCache < 0 {
		return Config{}, fmt.Errorf("DB_STATEMENT_CACHE_CAPACITY must be non-negative")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be json or console")
	}

	return cfg, nil
}
