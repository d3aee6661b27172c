package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultStoreMaxConns      = 10
	defaultMaxUploadBytes     = 10 << 20
	defaultLoginRatePerSecond = 0.2
	defaultLoginBurst         = 5
	defaultCORSMaxAge         = 300
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "menu-cms",

		"store.driver":          DriverSQLite,
		"store.dsn":             "file:menu.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		"store.database":        "menu",
		"store.max_conns":       defaultStoreMaxConns,
		"store.connect_timeout": "10s",
		"store.migrate":         true,

		"assets.driver":           AssetsDiscard,
		"assets.region":           "auto",
		"assets.use_path_style":   false,
		"assets.max_upload_bytes": defaultMaxUploadBytes,

		"auth.issuer":                               "menu-cms",
		"auth.token_ttl":                            "12h",
		"auth.login_rate_limit.requests_per_second": defaultLoginRatePerSecond,
		"auth.login_rate_limit.burst_size":          defaultLoginBurst,

		"cors.max_age": defaultCORSMaxAge,

		"reorder.persist_timeout": "10s",
	}
}
