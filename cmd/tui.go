package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/phx/internal/shared"
	"github.com/desertthunder/phx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal date picker.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.ready(); err != nil {
		return err
	}

	bounds, err := r.bounds()
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(cmd.String("log-file"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, r.config.LogLevel())
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.engine, bounds, fileLogger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
