package tasks

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/phx/internal/models"
	"github.com/desertthunder/phx/internal/services"
	"github.com/desertthunder/phx/internal/shared"
)

// LookupResult contains everything fetched for one selected date.
type LookupResult struct {
	ID      string       // Correlation ID shared by the lookup's log entries
	Date    time.Time    // Selected date
	Show    *models.Show // First matching show (nil if none)
	Setlist []any        // Raw setlist entries for the show (nil if absent)
}

// Lookup defines the date lookups behind a single user selection.
type Lookup interface {
	ShowByDate(ctx context.Context, date time.Time) (*models.Show, error)
	SetlistByDate(ctx context.Context, date time.Time) ([]any, error)
	Run(ctx context.Context, progress chan<- ProgressUpdate, date time.Time) (*LookupResult, error)
}

var _ Lookup = (*LookupEngine)(nil)

// LookupEngine implements [Lookup] on top of a [services.Service].
type LookupEngine struct {
	svc    services.Service
	logger *log.Logger
}

// NewLookupEngine creates a new LookupEngine. A nil logger discards output.
func NewLookupEngine(svc services.Service, logger *log.Logger) *LookupEngine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LookupEngine{svc: svc, logger: logger}
}

// SetLogger swaps the engine's logger, e.g. to a file logger while a TUI owns the terminal.
func (e *LookupEngine) SetLogger(logger *log.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// ShowByDate returns the first show played on date, or nil when there is none.
func (e *LookupEngine) ShowByDate(ctx context.Context, date time.Time) (*models.Show, error) {
	return e.showByDate(ctx, e.logger, date)
}

// SetlistByDate returns every setlist entry of the show played on date, or nil when any step comes back empty.
func (e *LookupEngine) SetlistByDate(ctx context.Context, date time.Time) ([]any, error) {
	return e.setlistByDate(ctx, e.logger, nil, date)
}

// Run performs the show and setlist lookups for date, in that order.
func (e *LookupEngine) Run(ctx context.Context, progress chan<- ProgressUpdate, date time.Time) (*LookupResult, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}

	result := &LookupResult{ID: shared.GenerateID(), Date: shared.Day(date)}
	logger := shared.WithLogger(e.logger, "lookup", result.ID, "date", shared.FormatDate(date))

	e.sendProgress(progress, fetchingShowUpdate(shared.FormatDate(date)))
	show, err := e.showByDate(ctx, logger, date)
	if err != nil {
		return nil, fmt.Errorf("show lookup failed: %w", err)
	}
	result.Show = show

	setlist, err := e.setlistByDate(ctx, logger, progress, date)
	if err != nil {
		return nil, fmt.Errorf("setlist lookup failed: %w", err)
	}
	result.Setlist = setlist

	logger.Info("lookup complete", "show", show != nil, "entries", len(setlist))
	e.sendProgress(progress, completeUpdate(result))
	return result, nil
}

func (e *LookupEngine) showByDate(ctx context.Context, logger *log.Logger, date time.Time) (*models.Show, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}

	formatted := shared.FormatDate(date)
	shows, err := e.svc.GetShows(ctx, services.ColumnShowDate, formatted)
	if err != nil {
		return nil, err
	}

	if len(shows) == 0 {
		logger.Debug("no show found")
		return nil, nil
	}

	record, ok := shows[0].(models.Record)
	if !ok {
		logger.Warn("skipping malformed show record", "type", fmt.Sprintf("%T", shows[0]))
		return nil, nil
	}

	show := models.ShowFromRecord(record)
	logger.Debug("show found", "showid", show.ShowID, "venue", show.Venue)
	return &show, nil
}

func (e *LookupEngine) setlistByDate(ctx context.Context, logger *log.Logger, progress chan<- ProgressUpdate, date time.Time) ([]any, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}

	formatted := shared.FormatDate(date)
	e.sendProgress(progress, fetchingSetlistUpdate(formatted))

	byDate, err := e.svc.GetSetlists(ctx, services.ColumnShowDate, formatted)
	if err != nil {
		return nil, err
	}
	if len(byDate) == 0 {
		logger.Debug("no setlist entries for date")
		return nil, nil
	}

	e.sendProgress(progress, resolvingShowIDUpdate())
	first, ok := byDate[0].(models.Record)
	if !ok {
		logger.Warn("first setlist entry is not a record", "type", fmt.Sprintf("%T", byDate[0]))
		return nil, nil
	}

	showID := models.StringField(first, "showid", "")
	if showID == "" {
		logger.Warn("first setlist entry has no show id")
		return nil, nil
	}

	e.sendProgress(progress, fetchingShowSetlistUpdate(showID))
	entries, err := e.svc.GetSetlists(ctx, services.ColumnShowID, showID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		logger.Debug("no setlist entries for show", "showid", showID)
		return nil, nil
	}

	logger.Debug("setlist resolved", "showid", showID, "by_date", len(byDate), "by_show", len(entries))
	return entries, nil
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *LookupEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
