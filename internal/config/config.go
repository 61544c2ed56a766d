package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	API   APIConfig   `mapstructure:"api" validate:"required"`
	Auth  AuthConfig  `mapstructure:"auth"`
	Cache CacheConfig `mapstructure:"cache"`
	AI    AIConfig    `mapstructure:"ai"`
}

// APIConfig contains settings for the backend REST API connection.
type APIConfig struct {
	BaseURL  string        `mapstructure:"base_url"  validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout"   validate:"gte=0"`
	LogLevel string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains the credential attached to outgoing requests.
// Token issuance is handled elsewhere; the client only carries the token.
type AuthConfig struct {
	Token string `mapstructure:"token"`
}

// CacheConfig controls query-cache staleness. Windows are configured per
// resource family rather than per call site so the invalidation protocol
// stays testable in isolation.
type CacheConfig struct {
	// DefaultStaleAfter applies to any key family without an explicit window.
	DefaultStaleAfter time.Duration `mapstructure:"default_stale_after" validate:"gte=0"`

	// StaleAfter maps a resource family (the first key part, e.g. "courses")
	// to its staleness window.
	StaleAfter map[string]time.Duration `mapstructure:"stale_after"`

	// NotifyDebounce bounds duplicate user notifications for the same
	// failure within the window.
	NotifyDebounce time.Duration `mapstructure:"notify_debounce" validate:"gte=0"`
}

// AIConfig contains settings for the schedule-suggestion integration.
type AIConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"`
}
