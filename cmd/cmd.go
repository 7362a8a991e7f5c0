// submodule cmd contains command definitions
package main

import (
	"strings"

	"github.com/desertthunder/phx/internal/formatter"
	"github.com/urfave/cli/v3"
)

func dateFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Show date (YYYY-MM-DD), defaults to the configured default date",
	}
}

func formatFlag(formats ...string) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format (" + strings.Join(formats, ", ") + ")",
		Value:   "text",
	}
}

// lookupCommand runs the show and setlist lookups for a date
func lookupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "lookup",
		Usage:  "Show information and setlist for a date",
		Flags:  []cli.Flag{dateFlag(), formatFlag(formatter.Formats...)},
		Action: r.Lookup,
	}
}

// showCommand runs only the show lookup
func showCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "show",
		Usage:  "Show information (venue, location, show id, artist) for a date",
		Flags:  []cli.Flag{dateFlag(), formatFlag("text", "json")},
		Action: r.Show,
	}
}

// setlistCommand runs only the setlist lookup
func setlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setlist",
		Usage:  "Setlist for a date, grouped by set",
		Flags:  []cli.Flag{dateFlag(), formatFlag("text", "csv", "json")},
		Action: r.Setlist,
	}
}

// tuiCommand returns the top-level TUI command for interactive lookups.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI date picker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "File receiving logs while the TUI owns the terminal",
				Value: "./tmp/phx-tui.log",
			},
		},
		Action: r.TUI,
	}
}

// serveCommand starts the web interface
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the lookup page and JSON API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to listen on (defaults to [server] host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (defaults to [server] port)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the page in the default browser",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// apiCommand handles direct Phish.net API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct Phish.net API calls",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "GET {method}/{column}/{value}.json and print the raw JSON envelope",
				ArgsUsage: "<shows|setlists> <showdate|showid> <value>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "method"},
					&cli.StringArg{Name: "column"},
					&cli.StringArg{Name: "value"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
		},
	}
}
