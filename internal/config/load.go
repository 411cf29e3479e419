package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. BLOG_SERVER_PORT maps to server.port.
const EnvPrefix = "BLOG"

// ErrMissingProviderSetting is returned when the selected backend provider
// lacks a setting it cannot run without.
var ErrMissingProviderSetting = errors.New("missing provider setting")

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first, without overriding
// variables already set. Environment variables take precedence over values
// from config files. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags and the settings required by the selected provider.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	var missing []string
	switch cfg.Backend.Provider {
	case ProviderPostgres:
		if cfg.Database.URL == "" {
			missing = append(missing, "database.url")
		}
		if cfg.Redis.Address == "" {
			missing = append(missing, "redis.address")
		}
		if cfg.Auth.JWTSecret == "" {
			missing = append(missing, "auth.jwt_secret")
		}
	case ProviderSupabase:
		if cfg.Supabase.URL == "" {
			missing = append(missing, "supabase.url")
		}
		if cfg.Supabase.AnonKey == "" {
			missing = append(missing, "supabase.anon_key")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w for %s provider: %s",
			ErrMissingProviderSetting, cfg.Backend.Provider, strings.Join(missing, ", "))
	}

	return nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_requests", false)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("backend.provider", ProviderPostgres)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.anon_key", "")
	v.SetDefault("supabase.timeout", "10s")
}
