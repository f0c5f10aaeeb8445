// Package config loads application settings from an optional YAML file and
// ZHANZEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	DBPath  string
	LogPath string

	GeminiAPIKey string
	GeminiModel  string

	DefaultMinutes int
}

// Load reads ~/.config/zhanzen/config.yaml when present and applies env
// overrides. A missing config file is not an error; a missing Gemini key is
// a normal offline mode handled by the wisdom provider.
func Load() (*Config, error) {
	v := viper.New()

	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	appDir := filepath.Join(cfgDir, "zhanzen")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(appDir)

	v.SetDefault("db_path", filepath.Join(appDir, "zhanzen.db"))
	v.SetDefault("log_path", filepath.Join(appDir, "zhanzen.log"))
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("timer.default_minutes", 10)

	v.BindEnv("db_path", "ZHANZEN_DB_PATH")
	v.BindEnv("log_path", "ZHANZEN_LOG_PATH")
	v.BindEnv("gemini.api_key", "ZHANZEN_GEMINI_API_KEY", "GEMINI_API_KEY")
	v.BindEnv("gemini.model", "ZHANZEN_GEMINI_MODEL")
	v.BindEnv("timer.default_minutes", "ZHANZEN_DEFAULT_MINUTES")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		DBPath:         v.GetString("db_path"),
		LogPath:        v.GetString("log_path"),
		GeminiAPIKey:   v.GetString("gemini.api_key"),
		GeminiModel:    v.GetString("gemini.model"),
		DefaultMinutes: v.GetInt("timer.default_minutes"),
	}
	if cfg.DefaultMinutes < 1 || cfg.DefaultMinutes > 120 {
		cfg.DefaultMinutes = 10
	}
	return cfg, nil
}
