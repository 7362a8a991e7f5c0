package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/phx/internal/formatter"
	"github.com/desertthunder/phx/internal/models"
	"github.com/desertthunder/phx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Lookup prints the show and setlist for the selected date.
func (r *Runner) Lookup(ctx context.Context, cmd *cli.Command) error {
	if err := r.ready(); err != nil {
		return err
	}

	date, err := r.resolveDate(cmd)
	if err != nil {
		return err
	}

	result, err := r.engine.Run(ctx, nil, date)
	if err != nil {
		return err
	}

	view := formatter.Present(result.Setlist)
	if view.Notice == formatter.NoticeInvalid {
		r.logger.Warn("unexpected setlist shape", "received", view.Received)
	}

	output, err := formatter.Export(formatter.Report{Date: result.Date, Show: result.Show, View: view}, cmd.String("format"))
	if err != nil {
		return err
	}
	return r.writeBytes(output)
}

// Show prints the show played on the selected date.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	format, err := checkFormat(cmd.String("format"), "text", "json")
	if err != nil {
		return err
	}
	if err := r.ready(); err != nil {
		return err
	}

	date, err := r.resolveDate(cmd)
	if err != nil {
		return err
	}

	r.logger.Debug("looking up show", "date", shared.FormatDate(date))
	show, err := r.engine.ShowByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("show lookup failed: %w", err)
	}

	if format == "json" {
		return r.writeJSON(showJSON{Date: shared.FormatDate(date), Show: show}, true)
	}

	r.writePlain("%s\n\n", formatter.Report{Date: date}.Heading())
	return r.writePlain("%s", formatter.RenderShow(show))
}

// Setlist prints the setlist for the selected date grouped by set.
func (r *Runner) Setlist(ctx context.Context, cmd *cli.Command) error {
	format, err := checkFormat(cmd.String("format"), "text", "csv", "json")
	if err != nil {
		return err
	}
	if err := r.ready(); err != nil {
		return err
	}

	date, err := r.resolveDate(cmd)
	if err != nil {
		return err
	}

	r.logger.Debug("looking up setlist", "date", shared.FormatDate(date))
	entries, err := r.engine.SetlistByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("setlist lookup failed: %w", err)
	}

	view := formatter.Present(entries)

	switch format {
	case "csv":
		data, err := formatter.ExportToCSV(view)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	case "json":
		return r.writeJSON(setlistJSON{
			Date:   shared.FormatDate(date),
			Sets:   nonNil(view.Sets),
			Notice: view.NoticeText(),
		}, true)
	default:
		return r.writePlain("%s", formatter.RenderText(view))
	}
}

type showJSON struct {
	Date string       `json:"date"`
	Show *models.Show `json:"show"`
}

type setlistJSON struct {
	Date   string            `json:"date"`
	Sets   []models.SetGroup `json:"sets"`
	Notice string            `json:"notice,omitempty"`
}

func nonNil(sets []models.SetGroup) []models.SetGroup {
	if sets == nil {
		return []models.SetGroup{}
	}
	return sets
}

// checkFormat normalizes format and rejects anything outside allowed.
func checkFormat(format string, allowed ...string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return allowed[0], nil
	}
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: unknown format %q (want one of %s)",
		shared.ErrInvalidArgument, format, strings.Join(allowed, ", "))
}

