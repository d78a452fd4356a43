// Package server wires configuration, the record store, services and the
// HTTP transport into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/gophdemo/internal/logging"
	"github.com/dmitrijs2005/gophdemo/internal/server/config"
	"github.com/dmitrijs2005/gophdemo/internal/server/httpapi"
	"github.com/dmitrijs2005/gophdemo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophdemo/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	server      *httpapi.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	rm, err := repomanager.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(rm, c)
	ps := services.NewProcessor()

	var opts []httpapi.Option
	if c.RequireLogin {
		opts = append(opts, httpapi.WithRequireLogin(c.SecretKey))
	}
	srv := httpapi.NewHTTPServer(c.EndpointAddr, logger, us, ps, opts...)

	return &App{config: c, logger: logger, repomanager: rm, server: srv}, nil
}

// watchSignals cancels the run on SIGINT, SIGTERM or SIGQUIT.
func (app *App) watchSignals(ctx context.Context, cancelFunc context.CancelFunc) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	select {
	case s := <-sigs:
		app.logger.Info(ctx, "Signal received", "signal", s.String())
		cancelFunc()
	case <-ctx.Done():
	}
	return nil
}

// Run blocks until the server stops, either because ctx was cancelled, a
// termination signal arrived, or the listener failed.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "require_login", app.config.RequireLogin, "persistent_store", app.config.DatabaseDSN != "")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.watchSignals(gctx, cancelFunc)
	})

	g.Go(func() error {
		defer cancelFunc()
		return app.server.Run(gctx)
	})

	err := g.Wait()

	if cerr := app.repomanager.Close(); cerr != nil {
		app.logger.Error(ctx, "closing record store", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
