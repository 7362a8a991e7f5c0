package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/phx/internal/server"
	"github.com/desertthunder/phx/internal/shared"
	"github.com/desertthunder/phx/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the web interface until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.ready(); err != nil {
		return err
	}

	if cmd.IsSet("host") {
		r.config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		r.config.Server.Port = int(cmd.Int("port"))
	}

	router := server.NewBasicRouter()
	router.Use(server.Recover(r.logger), server.RequestID(), server.Logging(r.logger))
	web.NewHandler(r.engine, r.config.DateBounds, r.logger).Register(router)

	for _, route := range router.Routes() {
		r.logger.Debug("route", "route", route)
	}

	srv := server.NewServer(r.config.Addr(), router, r.logger)
	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	url := "http://" + ln.Addr().String()
	r.writePlain("Serving Phish setlist lookup at %s\n", url)

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx, ln)
}
