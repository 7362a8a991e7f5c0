package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/phx/internal/services"
	"github.com/desertthunder/phx/internal/shared"
	"github.com/desertthunder/phx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	service    services.Service
	phishnet   *services.PhishNetService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	engine     *tasks.LookupEngine
	now        func() time.Time
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Service    services.Service          // Overrides the Phish.net service used for lookups
	PhishNet   *services.PhishNetService // Used for raw API calls; built from Config when nil
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Config.Timeout()}
	}
	if opts.PhishNet == nil {
		opts.PhishNet = services.NewPhishNetService(services.NewAPIService(services.APIOpts{
			BaseURL:    opts.Config.PhishNet.BaseURL,
			APIKey:     opts.Config.PhishNet.APIKey,
			HTTPClient: opts.HTTPClient,
			RateLimit:  opts.Config.PhishNet.RateLimit,
		}))
	}
	if opts.Service == nil {
		opts.Service = opts.PhishNet
	}

	return &Runner{
		config:     opts.Config,
		service:    opts.Service,
		phishnet:   opts.PhishNet,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		engine:     tasks.NewLookupEngine(opts.Service, opts.Logger),
		now:        time.Now,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		lookupCommand, showCommand, setlistCommand, tuiCommand, serveCommand, setupCommand, apiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger swaps the logger used by the runner and its lookup engine.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.engine.SetLogger(logger)
}

// ready validates the configuration before any lookup or UI starts.
func (r *Runner) ready() error {
	if err := r.config.Validate(); err != nil {
		return err
	}
	if r.service == nil {
		return fmt.Errorf("%w: Phish.net service not initialized", shared.ErrServiceUnavailable)
	}
	return nil
}

// bounds returns the selectable date range as of now.
func (r *Runner) bounds() (shared.DateRange, error) {
	return r.config.DateBounds(r.now())
}

// resolveDate reads the --date flag, defaulting to the configured date, and rejects dates out of range.
func (r *Runner) resolveDate(cmd *cli.Command) (time.Time, error) {
	bounds, err := r.bounds()
	if err != nil {
		return time.Time{}, err
	}
	return bounds.Resolve(cmd.String("date"))
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeBytes(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
