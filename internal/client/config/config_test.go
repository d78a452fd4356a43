package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", c.ServerBaseURL)
	assert.Equal(t, 10*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 5*time.Second, c.MessageTTL)
	assert.False(t, c.Debug)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3000", cfg.ServerBaseURL)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, 5*time.Second, cfg.MessageTTL)
}
