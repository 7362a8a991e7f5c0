package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/phx/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	r.logger.Info("creating config file from template", "path", configPath)
	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}

	if _, err := shared.LoadConfig(configPath); err != nil {
		return fmt.Errorf("failed to load created config: %w", err)
	}

	r.writePlain("✓ Config written to %s\n", configPath)
	r.writePlain("\nNext steps:\n")
	r.writePlain("1. Set %s in your environment or in a .env file\n", shared.APIKeyEnv)
	r.writePlain("2. Run 'phx lookup --date 1999-07-24' to test the API key\n")
	return nil
}
