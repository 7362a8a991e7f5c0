package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/desertthunder/phx/internal/shared"
	"github.com/urfave/cli/v3"
)

const configPath = "config.toml"

func main() {
	logger := shared.NewLogger(nil)

	if err := shared.LoadEnv(); err != nil {
		logger.Warn("failed to load .env", "error", err)
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}
	config.ApplyEnv()
	shared.SetLogLevel(logger, config.LogLevel())

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "phx",
		Usage:    "Look up Phish shows and setlists by date",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingAPIKey):
			fmt.Fprintf(os.Stderr, "Error: %s not found in environment. Set it in your shell or in a .env file.\n", shared.APIKeyEnv)
			os.Exit(1)
		case errors.Is(err, shared.ErrNotImplemented):
			logger.Warn("not implemented")
			os.Exit(0)
		default:
			logger.Fatalf("application error: %v", err)
		}
	}
}
