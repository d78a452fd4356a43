package config

import "time"

// Config holds runtime settings for the gophdemo CLI.
//
// Fields:
//   - ServerBaseURL: scheme, host and port of the API server.
//   - OnlineCheckInterval: how often the client checks whether the server is reachable.
//   - MessageTTL: how long a message banner stays visible.
//   - Debug: enables debug-level logging on stderr.
type Config struct {
	ServerBaseURL       string
	OnlineCheckInterval time.Duration
	MessageTTL          time.Duration
	Debug               bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.OnlineCheckInterval = 10 * time.Second
	c.MessageTTL = 5 * time.Second
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
