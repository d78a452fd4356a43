// Package config handles configuration for the server component,
// including defaults, a JSON or YAML file overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the gophdemo API server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: optional record source. Empty means the built-in in-memory
//     records; "postgres://..." and "sqlite:..."/"file:..." select a SQL store.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: access token lifetime.
//   - RequireLogin: when set, /api/users and /api/process-data demand a bearer token.
//   - Debug: enables debug-level logging.
type Config struct {
	EndpointAddr                string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	RequireLogin                bool
	Debug                       bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key must be overridden whenever RequireLogin is used for real.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.RequireLogin = false
	c.Debug = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
