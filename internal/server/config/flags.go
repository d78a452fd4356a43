package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdemo/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   record source DSN (empty for in-memory)
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-l          require login for the data endpoints
//	-v          debug logging
//
// Only the flags listed here are picked out of os.Args, so the config file
// flag and anything else on the command line do not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"}, "-l", "-v")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "record source DSN (empty for in-memory)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.BoolVar(&config.RequireLogin, "l", config.RequireLogin, "require login for data endpoints")
	fs.BoolVar(&config.Debug, "v", config.Debug, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
