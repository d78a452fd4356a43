// Package config loads runtime configuration for the gophdemo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file (see parseFile) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API server
//	-i int      online status check interval (seconds)
//	-m int      message banner lifetime (seconds)
//	-v          debug logging
//
// # File schema
//
// Intervals use timex.Duration, so values can be either strings like "5s"
// or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:3000",
//	  "online_check_interval": "10s",
//	  "message_ttl": "5s"
//	}
//
// The same keys work in YAML when the file ends in .yaml or .yml.
package config
