package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophdemo/internal/buildinfo"
	"github.com/dmitrijs2005/gophdemo/internal/client/cli"
	"github.com/dmitrijs2005/gophdemo/internal/client/config"
	"github.com/dmitrijs2005/gophdemo/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, logging.FormatText, cfg.Debug)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
