package config

import (
	"errors"
	"fmt"
	"net/url"
)

// minJWTSecretBytes is the shortest HS256 secret accepted.
const minJWTSecretBytes = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Store.validate(),
		c.Assets.validate(),
		c.Auth.validate(),
		c.Reorder.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("client.rate_limit.requests_per_second must not be negative"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverSQLite, DriverPostgres, DriverMongo:
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: sqlite, postgres, mongo; got %q", s.Driver))
	}
	if s.DSN == "" {
		errs = append(errs, errors.New("store.dsn must not be empty"))
	}
	if s.Driver == DriverMongo && s.Database == "" {
		errs = append(errs, errors.New("store.database must not be empty when driver is mongo"))
	}
	if s.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("store.max_conns must be >= 1, got %d", s.MaxConns))
	}

	return errors.Join(errs...)
}

func (a *AssetsConfig) validate() error {
	var errs []error

	if a.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("assets.max_upload_bytes must be positive"))
	}

	switch a.Driver {
	case AssetsDiscard:
		return errors.Join(errs...)
	case AssetsS3:
	default:
		return errors.Join(append(errs,
			fmt.Errorf("assets.driver must be one of: s3, discard; got %q", a.Driver))...)
	}

	if a.Bucket == "" {
		errs = append(errs, errors.New("assets.bucket must not be empty when driver is s3"))
	}
	if a.Region == "" {
		errs = append(errs, errors.New("assets.region must not be empty when driver is s3"))
	}
	if (a.AccessKeyID == "") != (a.SecretAccessKey == "") {
		errs = append(errs, errors.New("assets.access_key_id and assets.secret_access_key must be set together"))
	}
	for name, raw := range map[string]string{"assets.endpoint": a.Endpoint, "assets.public_base_url": a.PublicBaseURL} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s must be an absolute URL, got %q", name, raw))
		}
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if a.JWTSecret != "" && len(a.JWTSecret) < minJWTSecretBytes {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minJWTSecretBytes))
	}
	if a.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if a.Issuer == "" {
		errs = append(errs, errors.New("auth.issuer must not be empty"))
	}
	if a.LoginRateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("auth.login_rate_limit.requests_per_second must not be negative"))
	}

	return errors.Join(errs...)
}

func (r *ReorderConfig) validate() error {
	if r.PersistTimeout <= 0 {
		return errors.New("reorder.persist_timeout must be positive")
	}
	return nil
}
