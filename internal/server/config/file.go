package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/gophdemo/internal/flagx"
	"github.com/dmitrijs2005/gophdemo/internal/timex"
)

// FileConfig is the on-disk shape of the server configuration. Pointer
// fields distinguish "absent" from a zero value, so only the keys present in
// the file override defaults.
type FileConfig struct {
	EndpointAddr                *string         `json:"endpoint_addr" yaml:"endpoint_addr"`
	DatabaseDSN                 *string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                   *string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	RequireLogin                *bool           `json:"require_login" yaml:"require_login"`
	Debug                       *bool           `json:"debug" yaml:"debug"`
}

// parseFile overlays values from the file named by -c/-config. Files ending
// in .yaml or .yml are decoded as YAML, everything else as JSON. A missing
// flag means nothing is loaded; an unreadable or malformed file panics.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RequireLogin != nil {
		config.RequireLogin = *c.RequireLogin
	}
	if c.Debug != nil {
		config.Debug = *c.Debug
	}
}
