package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "sqlite:demo.db", "-s", "secret", "-t", "5", "-l", "-v",
		}, expected: &Config{
			EndpointAddr:                "127.0.0.1:9090",
			DatabaseDSN:                 "sqlite:demo.db",
			SecretKey:                   "secret",
			AccessTokenValidityDuration: 5 * time.Minute,
			RequireLogin:                true,
			Debug:                       true,
		}},
		{name: "unrelated flags ignored", args: []string{"cmd", "-c", "cfg.yaml", "-x", "-a", ":8080"},
			expected: &Config{
				EndpointAddr:                ":8080",
				SecretKey:                   "secretKey",
				AccessTokenValidityDuration: 60 * time.Minute,
			}},
		{name: "bad int", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
