package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophdemo/internal/buildinfo"
	"github.com/dmitrijs2005/gophdemo/internal/logging"
	"github.com/dmitrijs2005/gophdemo/internal/server"
	"github.com/dmitrijs2005/gophdemo/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stdout, logging.FormatJSON, cfg.Debug)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
