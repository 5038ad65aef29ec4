package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/football-101/internal/app"
	"github.com/riskibarqy/football-101/internal/config"
	"github.com/riskibarqy/football-101/internal/platform/logging"
	"github.com/riskibarqy/football-101/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default().Error("load config failed", "error", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("component", "footballctl")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("open repositories failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = repos.Close() }()

	c := &cli{
		defaultSeason: cfg.DefaultSeason,
		defaultLeague: cfg.DefaultLeague,
		out:           os.Stdout,
		seasons:       app.NewSeasonService(cfg, repos),
		verifier:      app.NewVerifyService(repos),
		populator: func() (populator, error) {
			if err := cfg.ValidateProvider(); err != nil {
				return nil, err
			}
			return app.NewPopulationService(cfg, repos, logger), nil
		},
	}

	if err := c.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var (
	_ populator     = (*usecase.PopulationService)(nil)
	_ currentSetter = (*usecase.SeasonService)(nil)
	_ reporter      = (*usecase.VerifyService)(nil)
)
