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

// FileConfig is a DTO used exclusively for file decoding. Absent keys stay
// nil and leave the corresponding Config value alone.
type FileConfig struct {
	ServerBaseURL       *string         `json:"server_base_url" yaml:"server_base_url"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	MessageTTL          *timex.Duration `json:"message_ttl" yaml:"message_ttl"`
	Debug               *bool           `json:"debug" yaml:"debug"`
}

// parseFile overlays Config with values loaded from the -c/-config file.
// It panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *fc.ServerBaseURL
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.MessageTTL != nil {
		cfg.MessageTTL = fc.MessageTTL.Duration
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
}
