// Command leadstaged runs the lead-management daemon: it owns the database,
// serves the HTTP API, and sweeps stale leads into the follow-up stage.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"leadstage/internal/config"
	"leadstage/internal/daemon"
	"leadstage/internal/leadstore"
	"leadstage/internal/logging"
	"leadstage/internal/workflow"
)

func main() {
	configPath := flag.String("config", "", "configuration file path")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("ensure directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := leadstore.Open(cfg)
	if err != nil {
		logger.Error("open lead store", logging.Error(err))
		return
	}

	sweeper := workflow.NewManager(cfg, store, logger)

	d, err := daemon.New(cfg, store, logger, sweeper)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		store.Close()
		return
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		logger.Error("daemon start", logging.Error(err))
		return
	}

	<-ctx.Done()
	logger.Info("leadstaged shutting down")
}
