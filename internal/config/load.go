package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("edtrack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/edtrack")

	v.SetEnvPrefix("EDTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the environment may carry everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Registering every key (empty where there is no real default) lets
	// AutomaticEnv surface it through Unmarshal.
	v.SetDefault("api.base_url", "")
	v.SetDefault("auth.token", "")
	v.SetDefault("ai.gemini_api_key", "")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.log_level", "info")
	v.SetDefault("cache.default_stale_after", 30*time.Second)
	v.SetDefault("cache.notify_debounce", 2*time.Second)
	v.SetDefault("ai.model_name", "gemini-2.0-flash")
}
