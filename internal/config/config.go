package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store backends understood by repository.OpenStore.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken      string        `mapstructure:"telegram_token"`
	DatabaseURL        string        `mapstructure:"database_url"`
	StoreBackend       string        `mapstructure:"store_backend"`
	RedisURL           string        `mapstructure:"redis_url"`
	ReportTime         string        `mapstructure:"report_time"`
	ReportInterval     time.Duration `mapstructure:"-"`
	PendingHorizonDays int           `mapstructure:"pending_horizon_days"`
	Timezone           string        `mapstructure:"timezone"`
	LogMode            string        `mapstructure:"log_mode"`
	BcryptCost         int           `mapstructure:"bcrypt_cost"`
}

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory, with sane defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("database_url", "inspire.db")
	v.SetDefault("store_backend", BackendSQLite)
	v.SetDefault("report_time", "08:00")
	v.SetDefault("pending_horizon_days", 7)
	v.SetDefault("log_mode", "dev")
	v.SetDefault("bcrypt_cost", 10)
	for _, key := range []string{"telegram_token", "redis_url", "timezone", "report_interval_hours"} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	cfg.ReportInterval = parseInterval(strings.TrimSpace(v.GetString("report_interval_hours")))

	if cfg.PendingHorizonDays <= 0 {
		cfg.PendingHorizonDays = 7
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable default.
func (c Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	switch c.StoreBackend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}

// Location resolves the configured timezone, falling back to time.Local.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
