// Package web serves the setlist lookup as a single HTML page and a JSON endpoint.
//
// Routes
//
//	GET /                 → Date form; renders the show and set tables for ?date= (default date when empty)
//	GET /api/lookup?date= → The same lookup as JSON
//	GET /health           → Liveness check
//
// Dates outside the configured range are rejected with 400. Failed upstream lookups surface as 502.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/phx/internal/formatter"
	"github.com/desertthunder/phx/internal/models"
	"github.com/desertthunder/phx/internal/server"
	"github.com/desertthunder/phx/internal/shared"
	"github.com/desertthunder/phx/internal/tasks"
)

const (
	PathIndex  = "/"
	PathLookup = "/api/lookup"
	PathHealth = "/health"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// BoundsFunc computes the selectable date range as of now.
type BoundsFunc func(now time.Time) (shared.DateRange, error)

var _ server.Handler = (*Handler)(nil)

// Handler serves the lookup page and JSON API.
type Handler struct {
	engine tasks.Lookup
	bounds BoundsFunc
	logger *log.Logger
	now    func() time.Time
}

// NewHandler creates a [Handler]. A nil logger discards output.
func NewHandler(engine tasks.Lookup, bounds BoundsFunc, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{engine: engine, bounds: bounds, logger: logger, now: time.Now}
}

// Routes returns the paths served by [Handler.ServeHTTP].
func (h *Handler) Routes() []string {
	return []string{PathIndex, PathLookup}
}

// Register mounts the handler and the health check on r.
func (h *Handler) Register(r server.Router) {
	r.Handler(h)
	r.Handle(http.MethodGet, PathHealth, server.Health())
}

// ServeHTTP dispatches GET and HEAD requests by path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case PathIndex:
		h.index(w, r)
	case PathLookup:
		h.lookup(w, r)
	default:
		http.NotFound(w, r)
	}
}

// page is the data rendered by the index template.
type page struct {
	Date    string
	Min     string
	Max     string
	Heading string
	Show    *models.Show
	Sets    []models.SetGroup
	Notice  string
	NoShow  string
	Error   string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	bounds, err := h.bounds(h.now())
	if err != nil {
		h.logger.Error("invalid date bounds", "error", err)
		http.Error(w, "Invalid date configuration", http.StatusInternalServerError)
		return
	}

	p := page{
		Date:   shared.FormatDate(bounds.Default),
		Min:    shared.FormatDate(bounds.Min),
		Max:    shared.FormatDate(bounds.Max),
		NoShow: formatter.NoShowMessage,
	}

	report, status, err := h.run(r, bounds)
	if err != nil {
		p.Error = err.Error()
		if raw := r.URL.Query().Get("date"); raw != "" {
			p.Date = raw
		}
		h.render(w, status, p)
		return
	}

	p.Date = shared.FormatDate(report.Date)
	p.Heading = report.Heading()
	p.Show = report.Show
	p.Sets = report.View.Sets
	p.Notice = report.View.NoticeText()
	h.render(w, http.StatusOK, p)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	bounds, err := h.bounds(h.now())
	if err != nil {
		h.logger.Error("invalid date bounds", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "invalid date configuration"})
		return
	}

	report, status, err := h.run(r, bounds)
	if err != nil {
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, formatter.NewJSONReport(report))
}

// run resolves the requested date and performs the lookup, returning the HTTP status to use on failure.
func (h *Handler) run(r *http.Request, bounds shared.DateRange) (formatter.Report, int, error) {
	date, err := bounds.Resolve(r.URL.Query().Get("date"))
	if err != nil {
		return formatter.Report{}, http.StatusBadRequest, err
	}

	if h.engine == nil {
		return formatter.Report{}, http.StatusServiceUnavailable, shared.ErrServiceUnavailable
	}

	result, err := h.engine.Run(r.Context(), nil, date)
	if err != nil {
		logger := h.logger.With("date", shared.FormatDate(date))
		if id := server.RequestIDFrom(r.Context()); id != "" {
			logger = logger.With("request_id", id)
		}
		logger.Error("lookup failed", "error", err)

		if errors.Is(err, shared.ErrServiceUnavailable) {
			return formatter.Report{}, http.StatusServiceUnavailable, err
		}
		return formatter.Report{}, http.StatusBadGateway, err
	}

	return formatter.Report{
		Date: result.Date,
		Show: result.Show,
		View: formatter.Present(result.Setlist),
	}, http.StatusOK, nil
}

func (h *Handler) render(w http.ResponseWriter, status int, p page) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		h.logger.Error("template render failed", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := shared.MarshalJSON(v, false)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
