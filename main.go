package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/utils"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	utils.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	configPath, _ := fs.GetString("config")
	config, err := utils.LoadConfig(configPath, fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(config.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(config, logger); err != nil {
		logger.Error("game of life failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(config utils.Config, logger *zap.Logger) error {
	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var metrics *utils.Metrics
	if config.MetricsAddr != "" {
		metrics = utils.NewMetrics()
	}

	g := initializeGame(config, logger, metrics)
	g.displayGameInfo()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// the metrics server stops with the game
		defer cancel()
		return g.run(ctx)
	})
	if metrics != nil {
		eg.Go(func() error {
			logger.Info("serving metrics", zap.String("addr", config.MetricsAddr))
			return metrics.Serve(ctx, config.MetricsAddr)
		})
	}

	return eg.Wait()
}
