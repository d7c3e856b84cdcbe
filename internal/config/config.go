package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL is returned when DATABASE_URL is not configured.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// MaxBodyBytes caps JSON and URL-encoded request bodies.
const MaxBodyBytes int64 = 10 << 20

// Config holds the application configuration.
type Config struct {
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	Port               string        `mapstructure:"PORT"`
	Env                string        `mapstructure:"APP_ENV"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	DBMaxOpenConns     int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns     int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime  time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
}

var defaults = map[string]any{
	"DATABASE_URL":         "",
	"PORT":                 "3000",
	"APP_ENV":              "development",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "",
	"CORS_ALLOWED_ORIGINS": "http://localhost:3000,http://localhost:3001,http://127.0.0.1:5500",
	"SHUTDOWN_TIMEOUT":     "10s",
	"DB_MAX_OPEN_CONNS":    10,
	"DB_MAX_IDLE_CONNS":    10,
	"DB_CONN_MAX_LIFETIME": "5m",
}

// Load reads configuration from a .env file in the working directory (if any)
// and the process environment. The environment wins over the file.
func Load() (*Config, error) {
	return load(".env")
}

func load(dotenvPath string) (*Config, error) {
	if err := loadDotEnv(dotenvPath); err != nil {
		return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
		if cfg.IsDevelopment() {
			cfg.LogFormat = "console"
		}
	}
	return &cfg, nil
}

// loadDotEnv loads variables from path if the file exists.
// Existing environment variables are not overwritten.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// AllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, part := range strings.Split(c.CORSAllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
