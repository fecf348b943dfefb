package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/supermatch/internal/admin"
	"github.com/dmitrijs2005/supermatch/internal/buildinfo"
	"github.com/dmitrijs2005/supermatch/internal/cli"
	"github.com/dmitrijs2005/supermatch/internal/config"
	"github.com/dmitrijs2005/supermatch/internal/database"
	"github.com/dmitrijs2005/supermatch/internal/filex"
	"github.com/dmitrijs2005/supermatch/internal/logging"
	"github.com/dmitrijs2005/supermatch/internal/notify"
	"github.com/dmitrijs2005/supermatch/internal/repositories/snapshots"
	"github.com/dmitrijs2005/supermatch/internal/store"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	logger, err := logging.New(os.Stderr, cfg.LogLevel, logging.Format(cfg.LogFormat))
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "supermatch stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	if _, err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return err
	}
	db, err := database.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	st, err := store.New(ctx, snapshots.NewSQLiteRepository(db),
		store.WithSnapshotName(cfg.SnapshotName),
		store.WithLogger(logger.With("component", "store")),
	)
	if err != nil {
		return err
	}

	watcher := notify.NewWatcher(cli.SessionMatches(st), cfg.MatchPollInterval,
		notify.WithLogger(logger.With("component", "notify")))
	defer watcher.Stop()

	app := cli.NewApp(st, watcher, admin.NewGate(cfg.AdminSecret), logger, os.Stdin, os.Stdout)

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Info(context.Background(), "received signal, shutting down")
	}
	return nil
}
