package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/phx/internal/shared"
	"github.com/urfave/cli/v3"
)

// APIGet makes a direct GET request to Phish.net and prints the response body.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	method := cmd.StringArg("method")
	column := cmd.StringArg("column")
	value := cmd.StringArg("value")

	if method == "" || column == "" || value == "" {
		return fmt.Errorf("%w: usage: phx api get <method> <column> <value>", shared.ErrMissingArgument)
	}
	if err := r.config.Validate(); err != nil {
		return err
	}
	if r.phishnet == nil {
		return fmt.Errorf("%w: Phish.net service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("GET request", "method", method, "column", column, "value", value)

	resp, err := r.phishnet.Raw(ctx, method, column, value)
	if err != nil {
		return err
	}

	if !resp.OK() {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, cmd.Bool("pretty"))
	}

	if err := r.writeBytes(resp.Body); err != nil {
		return err
	}
	return r.writePlain("\n")
}
