// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Asset drivers.
const (
	AssetsS3      = "s3"
	AssetsDiscard = "discard"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Store     StoreConfig     `koanf:"store"`
	Assets    AssetsConfig    `koanf:"assets"`
	Auth      AuthConfig      `koanf:"auth"`
	CORS      CORSConfig      `koanf:"cors"`
	Reorder   ReorderConfig   `koanf:"reorder"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the outbound HTTP client used to reach
// object storage.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero rate disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StoreConfig selects and configures the entity persistence backend.
type StoreConfig struct {
	Driver         string        `koanf:"driver"`
	DSN            string        `koanf:"dsn"`
	Database       string        `koanf:"database"`
	MaxConns       int           `koanf:"max_conns"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	Migrate        bool          `koanf:"migrate"`
}

// AssetsConfig configures S3-compatible object storage for images.
type AssetsConfig struct {
	Driver          string `koanf:"driver"`
	Bucket          string `koanf:"bucket"`
	Region          string `koanf:"region"`
	Endpoint        string `koanf:"endpoint"`
	UsePathStyle    bool   `koanf:"use_path_style"`
	PublicBaseURL   string `koanf:"public_base_url"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
	MaxUploadBytes  int64  `koanf:"max_upload_bytes"`
}

// AuthConfig configures the admin access gate. When neither Password nor
// PasswordHash is set, admin login is disabled.
type AuthConfig struct {
	Password       string          `koanf:"password"`
	PasswordHash   string          `koanf:"password_hash"`
	JWTSecret      string          `koanf:"jwt_secret"`
	Issuer         string          `koanf:"issuer"`
	TokenTTL       time.Duration   `koanf:"token_ttl"`
	LoginRateLimit RateLimitConfig `koanf:"login_rate_limit"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age"`
}

// ReorderConfig tunes background order persistence.
type ReorderConfig struct {
	PersistTimeout time.Duration `koanf:"persist_timeout"`
}
