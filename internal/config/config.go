package config

import "time"

// Backend providers
const (
	ProviderPostgres = "postgres"
	ProviderSupabase = "supabase"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Backend  BackendConfig  `mapstructure:"backend" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port               int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel           string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogRequests        bool          `mapstructure:"log_requests"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins" validate:"required,min=1"`
}

// BackendConfig selects which collaborator implementation serves auth and data.
type BackendConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=postgres supabase"`
}

// DatabaseConfig contains all database-related configuration settings.
// Required when the provider is postgres.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"omitempty,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig holds the connection used for the token revocation list.
// Required when the provider is postgres.
type RedisConfig struct {
	Address  string `mapstructure:"address" validate:"omitempty,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// AuthConfig contains the self-hosted token and password settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0,lte=43200"`
	BcryptCost           int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// SupabaseConfig points at a hosted project. Required when the provider is supabase.
type SupabaseConfig struct {
	URL     string        `mapstructure:"url" validate:"omitempty,url"`
	AnonKey string        `mapstructure:"anon_key"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}
