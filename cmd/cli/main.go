package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/superapp/internal/buildinfo"
	"github.com/dmitrijs2005/superapp/internal/client/cli"
	"github.com/dmitrijs2005/superapp/internal/client/client"
	"github.com/dmitrijs2005/superapp/internal/client/config"
	"github.com/dmitrijs2005/superapp/internal/client/services"
	"github.com/dmitrijs2005/superapp/internal/client/session"
	"github.com/dmitrijs2005/superapp/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	repo, closeRepo, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	store := session.NewStore(session.NewMetadataPersister(repo), logger.With("component", "session"))
	if err := store.Restore(ctx); err != nil {
		logger.Warn(ctx, "stored session ignored", "error", err)
	}

	nav := cli.NewLoginNavigator(os.Stdout)
	api := client.NewHTTPClient(cfg, store, nav, logger)

	app := cli.NewApp(cfg,
		services.NewAuthService(api, store),
		services.NewActivityService(api, store),
		nav, logger, os.Stdin, os.Stdout)

	app.Run(ctx)
	return nil
}
