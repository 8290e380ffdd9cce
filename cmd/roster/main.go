package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/roster/internal/cli"
	"github.com/alexanderramin/roster/internal/config"
	"github.com/alexanderramin/roster/internal/logging"
	"github.com/alexanderramin/roster/internal/service"
	"github.com/alexanderramin/roster/internal/store"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var teardown []func()
	defer func() {
		for i := len(teardown) - 1; i >= 0; i-- {
			teardown[i]()
		}
	}()

	app := &cli.App{}

	// Detect interactive terminal for the board and the add dialog.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wiring waits for the persistent flags, which cobra parses first.
	app.Setup = func(flags cli.GlobalFlags) error {
		cfg, err := config.Load(flags.ConfigPath, os.Getenv)
		if err != nil {
			return err
		}
		applyFlags(&cfg, flags)
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, syncLog, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		teardown = append(teardown, syncLog)

		adapter, closeStore, err := store.Open(cfg.StoreOptions())
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		teardown = append(teardown, func() {
			if err := closeStore(); err != nil {
				logger.Warn("closing store", zap.Error(err))
			}
		})

		people, err := service.NewPeopleController(context.Background(), adapter, cfg.StoreKey,
			service.WithMaxPeople(cfg.MaxPeople),
			service.WithObserver(service.NewZapUseCaseObserver(logger)),
			service.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		if warn := people.LoadWarning(); warn != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, starting with an empty list\n", warn)
		}

		logger.Debug("roster ready",
			zap.String("backend", cfg.Backend),
			zap.String("key", cfg.StoreKey),
			zap.Int("people", people.Len()),
		)

		app.People = people
		app.MaxTasks = cfg.MaxTasksPerPerson
		return nil
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// applyFlags lets the persistent root flags override file and env settings.
func applyFlags(cfg *config.Config, flags cli.GlobalFlags) {
	if flags.Backend != "" {
		cfg.Backend = flags.Backend
	}
	if flags.DBPath != "" {
		cfg.DBPath = flags.DBPath
	}
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if flags.StoreKey != "" {
		cfg.StoreKey = flags.StoreKey
	}
}
