package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API       APIConfig
	Database  DatabaseConfig
	History   HistoryConfig
	Log       LogConfig
	UI        UIConfig
	Telemetry TelemetryConfig
}

// APIConfig holds lookup endpoint settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// HistoryConfig controls the lookup history kept in the database.
type HistoryConfig struct {
	Enabled bool
	Limit   int `validate:"gte=1,lte=50"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Path   string `validate:"required"`
	Level  string `validate:"oneof=debug info warn warning error"`
	Format string `validate:"oneof=text json"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ReportErrors bool `mapstructure:"report_errors"`
}

// TelemetryConfig holds OTLP exporter settings.
type TelemetryConfig struct {
	Enabled     bool
	Endpoint    string `validate:"required_if=Enabled true"`
	ServiceName string `mapstructure:"service_name"`
}

// HistoryEnabled reports whether lookups should be recorded.
func (c Config) HistoryEnabled() bool {
	return c.History.Enabled && strings.TrimSpace(c.Database.Path) != ""
}

// Load reads configuration from .env, file and env. Env var overrides use prefix BUSCACEP_.
func Load() (Config, error) {
	_ = godotenv.Load()

	home := os.Getenv("HOME")
	v := viper.New()

	v.SetDefault("api.base_url", "https://viacep.com.br/ws")
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "buscacep", "history.db"))
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.limit", 5)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "buscacep", "buscacep.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("ui.report_errors", false)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4317")
	v.SetDefault("telemetry.service_name", "buscacep")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("BUSCACEP_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "buscacep"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BUSCACEP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field constraints on a loaded config.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("BUSCACEP_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "buscacep", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("database.path", cfg.Database.Path)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("ui.report_errors", cfg.UI.ReportErrors)
	v.Set("telemetry.enabled", cfg.Telemetry.Enabled)
	v.Set("telemetry.endpoint", cfg.Telemetry.Endpoint)
	v.Set("telemetry.service_name", cfg.Telemetry.ServiceName)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

var validate = validator.New()
