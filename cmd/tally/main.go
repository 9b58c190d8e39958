package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mvankuipers/tally/internal/api"
	"github.com/mvankuipers/tally/internal/cli"
	"github.com/mvankuipers/tally/internal/config"
	"github.com/mvankuipers/tally/internal/notify"
	"github.com/mvankuipers/tally/internal/state"
	"github.com/mvankuipers/tally/internal/store"
	"github.com/mvankuipers/tally/internal/sync"
	"github.com/mvankuipers/tally/internal/timer"
	"github.com/mvankuipers/tally/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	// "tally config" and help output must work before a token exists.
	if cfg.API.Token == "" && !skipsTokenCheck(os.Args) {
		return fmt.Errorf("API token not configured: run 'tally config' and set api.token, or export TALLY_API_TOKEN")
	}

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	local, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening local database: %w", err)
	}
	defer local.Close()

	backend := api.NewClient(cfg.API.Token, cfg.API.BaseURL, log)
	domainStore := state.NewStore(log)
	syncSvc := sync.NewService(backend, domainStore, log)

	tmr := timer.New(domainStore, syncSvc, local, log)
	if err := tmr.Restore(); err != nil {
		log.Warn().Err(err).Msg("could not restore persisted timer")
	}

	app := &cli.App{
		Config: cfg,
		Store:  domainStore,
		Sync:   syncSvc,
		Timer:  tmr,
		Notify: notify.New(cfg.Notifications.Enabled, log),
		Local:  local,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

func skipsTokenCheck(args []string) bool {
	if len(args) < 2 {
		return true
	}
	for _, a := range args[1:] {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return args[1] == "config" || args[1] == "help"
}
