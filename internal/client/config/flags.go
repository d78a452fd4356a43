package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdemo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the API server (default from Config)
//	-i int      online check interval in seconds (default from Config)
//	-m int      message banner lifetime in seconds (default from Config)
//	-v          debug logging
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-m"}, "-v")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the API server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	messageTTL := fs.Int("m", int(cfg.MessageTTL.Seconds()), "message banner lifetime (in seconds)")
	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.MessageTTL = time.Duration(*messageTTL) * time.Second
}
