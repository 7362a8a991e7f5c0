package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/phx/internal/formatter"
	"github.com/desertthunder/phx/internal/shared"
	"github.com/desertthunder/phx/internal/tasks"
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	engine   tasks.Lookup
	bounds   shared.DateRange
	logger   *log.Logger
	now      func() time.Time
	input    textinput.Model
	date     time.Time
	loading  bool
	progress tasks.ProgressUpdate
	updates  <-chan tasks.ProgressUpdate
	done     <-chan Msg
	result   *tasks.LookupResult
	setlist  formatter.SetlistView
	warning  string
	err      error
	width    int
	height   int
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model starting at the range's default date.
func NewModel(ctx context.Context, engine tasks.Lookup, bounds shared.DateRange, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Prompt = "Date: "
	input.Placeholder = "YYYY-MM-DD"
	input.CharLimit = len(shared.DateLayout)
	input.Width = len(shared.DateLayout) + 1
	input.SetValue(shared.FormatDate(bounds.Default))
	input.Focus()

	return &Model{
		ctx:    ctx,
		engine: engine,
		bounds: bounds,
		logger: logger,
		now:    time.Now,
		input:  input,
		date:   bounds.Default,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init starts the cursor blinking and looks up the default date.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.lookup(m.date))
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case Msg:
		switch msg.kind {
		case MsgProgressUpdate:
			m.progress = msg.data.(tasks.ProgressUpdate)
			return m, m.waitForProgress()
		case MsgLookupComplete:
			m.complete(msg.data.(lookupComplete))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the date input, lookup status and results.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.banner.Render("Phish Setlist Lookup"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(styles.hint.Render(fmt.Sprintf("Shows from %s to %s",
		shared.FormatDate(m.bounds.Min), shared.FormatDate(m.bounds.Max))))
	b.WriteString("\n\n")

	if m.warning != "" {
		b.WriteString(styles.notice.Render(m.warning))
		b.WriteString("\n\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(styles.failure.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	case m.loading:
		b.WriteString(m.renderProgress())
		b.WriteString("\n\n")
	case m.result != nil:
		b.WriteString(m.renderResult())
		b.WriteString("\n")
	}

	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case m.loading && (key.Matches(msg, m.keys.submit) || key.Matches(msg, m.keys.prev) ||
		key.Matches(msg, m.keys.next) || key.Matches(msg, m.keys.today)):
		return m, nil
	case key.Matches(msg, m.keys.submit):
		date, err := shared.ParseDate(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, m.selectDate(date)
	case key.Matches(msg, m.keys.prev):
		return m, m.selectDate(m.current().AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.next):
		return m, m.selectDate(m.current().AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.today):
		return m, m.selectDate(shared.Day(m.now()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// current returns the typed date when it parses, otherwise the last looked up date.
func (m *Model) current() time.Time {
	if date, err := shared.ParseDate(m.input.Value()); err == nil {
		return date
	}
	return m.date
}

// selectDate clamps date into range, writes it back to the input and starts a lookup.
func (m *Model) selectDate(date time.Time) tea.Cmd {
	m.warning = ""
	clamped := m.bounds.Clamp(date)
	if !clamped.Equal(shared.Day(date)) {
		m.warning = fmt.Sprintf("%s is outside the available range; showing %s instead.",
			shared.FormatDate(date), shared.FormatDate(clamped))
	}

	m.input.SetValue(shared.FormatDate(clamped))
	m.input.CursorEnd()
	return m.lookup(clamped)
}

func (m *Model) lookup(date time.Time) tea.Cmd {
	m.date = date
	m.err = nil
	m.loading = true
	m.progress = tasks.ProgressUpdate{Message: fmt.Sprintf("Looking up %s...", shared.FormatDate(date))}

	if m.engine == nil {
		m.loading = false
		m.err = fmt.Errorf("%w: lookup engine not initialized", shared.ErrServiceUnavailable)
		return nil
	}

	updates := make(chan tasks.ProgressUpdate, 8)
	done := make(chan Msg, 1)
	m.updates = updates
	m.done = done

	go func() {
		result, err := m.engine.Run(m.ctx, updates, date)
		close(updates)
		done <- lookupCompleteMsg(result, err)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	updates, done := m.updates, m.done
	if updates == nil {
		return nil
	}

	return func() tea.Msg {
		if update, ok := <-updates; ok {
			return progressUpdateMsg(update)
		}
		return <-done
	}
}

func (m *Model) complete(msg lookupComplete) {
	m.loading = false
	m.updates = nil
	m.done = nil

	if msg.err != nil {
		m.logger.Error("lookup failed", "date", shared.FormatDate(m.date), "error", msg.err)
		m.err = msg.err
		m.result = nil
		return
	}

	m.result = msg.result
	m.setlist = formatter.Present(msg.result.Setlist)
	if m.setlist.Notice == formatter.NoticeInvalid {
		m.logger.Warn("unexpected setlist shape", "received", m.setlist.Received)
	}
}

func (m *Model) renderProgress() string {
	if m.progress.Total == 0 {
		return m.progress.Message
	}
	return fmt.Sprintf("[%d/%d] %s", m.progress.Step, m.progress.Total, m.progress.Message)
}

func (m *Model) renderResult() string {
	var b strings.Builder

	b.WriteString(styles.heading.Render(formatter.Report{Date: m.result.Date}.Heading()))
	b.WriteString("\n")

	if m.result.Show == nil {
		b.WriteString(styles.notice.Render(formatter.NoShowMessage))
		b.WriteString("\n\n")
	} else {
		b.WriteString(formatter.RenderShow(m.result.Show))
		b.WriteString("\n")
	}

	if m.setlist.Empty() {
		b.WriteString(styles.notice.Render(m.setlist.NoticeText()))
		b.WriteString("\n")
		return b.String()
	}

	for _, group := range m.setlist.Sets {
		b.WriteString(styles.setTitle.Render(group.Title))
		b.WriteString("\n")
		b.WriteString(formatter.RenderTable(group, styles.colHeader))
		b.WriteString("\n")
	}
	return b.String()
}
