package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/phx/internal/models"
	"github.com/desertthunder/phx/internal/shared"
)

// NoShowMessage is shown when the show lookup comes back empty.
const NoShowMessage = "No show information available for this date."

// Columns are the headers of every set table.
var Columns = []string{"Position", "Song", "Notes"}

// Report bundles one date's show and setlist for the document exporters.
type Report struct {
	Date time.Time
	Show *models.Show
	View SetlistView
}

// Heading returns e.g. "Show Information for July 24, 1999".
func (r Report) Heading() string {
	return "Show Information for " + r.Date.Format(shared.DisplayLayout)
}

// Rows converts a set into table rows: position, song with transition marker, footnote.
func Rows(group models.SetGroup) [][]string {
	rows := make([][]string, 0, len(group.Entries))
	for _, e := range group.Entries {
		rows = append(rows, []string{e.DisplayPosition(), e.DisplaySong(), e.Footnote})
	}
	return rows
}

// RenderTable renders one set as a bordered table.
func RenderTable(group models.SetGroup, headerStyle lipgloss.Style) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(Columns...).
		Rows(Rows(group)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}

// RenderText renders every set as a titled table, or the view's notice when there are none.
func RenderText(view SetlistView) string {
	if view.Empty() {
		return view.NoticeText() + "\n"
	}

	var b strings.Builder
	for i, group := range view.Sets {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(group.Title + "\n")
		b.WriteString(RenderTable(group, lipgloss.NewStyle().Bold(true)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderShow lays the show out in two columns: venue and location, then show id and artist.
func RenderShow(show *models.Show) string {
	if show == nil {
		return NoShowMessage + "\n"
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		"Venue: "+show.Venue,
		"Location: "+show.Location(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		"Show ID: "+show.ShowID,
		"Artist: "+show.ArtistName,
	)

	col := lipgloss.NewStyle().Width(lipgloss.Width(left) + 4)
	return lipgloss.JoinHorizontal(lipgloss.Top, col.Render(left), right) + "\n"
}

// ExportToText renders the heading, show and sets as terminal text.
func ExportToText(report Report) []byte {
	var buf bytes.Buffer

	buf.WriteString(report.Heading() + "\n\n")
	buf.WriteString(RenderShow(report.Show))
	buf.WriteString("\n")
	buf.WriteString(RenderText(report.View))

	return buf.Bytes()
}

// ExportToMarkdown converts a report to Markdown with one table per set.
func ExportToMarkdown(report Report) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", report.Heading()))

	if report.Show == nil {
		buf.WriteString(fmt.Sprintf("> %s\n\n", NoShowMessage))
	} else {
		buf.WriteString(fmt.Sprintf("**Venue**: %s\n\n", report.Show.Venue))
		buf.WriteString(fmt.Sprintf("**Location**: %s\n\n", report.Show.Location()))
		buf.WriteString(fmt.Sprintf("**Show ID**: %s\n\n", report.Show.ShowID))
		buf.WriteString(fmt.Sprintf("**Artist**: %s\n\n", report.Show.ArtistName))
	}

	if report.View.Empty() {
		buf.WriteString(fmt.Sprintf("> %s\n", report.View.NoticeText()))
		return buf.Bytes()
	}

	for _, group := range report.View.Sets {
		buf.WriteString(fmt.Sprintf("## %s\n\n", group.Title))
		buf.WriteString("| " + strings.Join(Columns, " | ") + " |\n")
		buf.WriteString("|---|---|---|\n")
		for _, row := range Rows(group) {
			for i := range row {
				row[i] = strings.ReplaceAll(row[i], "|", `\|`)
			}
			buf.WriteString("| " + strings.Join(row, " | ") + " |\n")
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// ExportToCSV converts a setlist view to CSV with columns: Set, Position, Song, Notes
func ExportToCSV(view SetlistView) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := append([]string{"Set"}, Columns...)
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, group := range view.Sets {
		for _, row := range Rows(group) {
			if err := writer.Write(append([]string{group.Label}, row...)); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// JSONReport is the serialized form of a [Report].
type JSONReport struct {
	Date   string            `json:"date"`
	Show   *models.Show      `json:"show"`
	Sets   []models.SetGroup `json:"sets"`
	Notice string            `json:"notice,omitempty"`
}

// NewJSONReport converts a report to its serialized form.
func NewJSONReport(report Report) JSONReport {
	sets := report.View.Sets
	if sets == nil {
		sets = []models.SetGroup{}
	}
	return JSONReport{
		Date:   shared.FormatDate(report.Date),
		Show:   report.Show,
		Sets:   sets,
		Notice: report.View.NoticeText(),
	}
}

// ExportToJSON converts a report to JSON.
func ExportToJSON(report Report, pretty bool) ([]byte, error) {
	return shared.MarshalJSON(NewJSONReport(report), pretty)
}

// Formats lists the supported export formats.
var Formats = []string{"text", "markdown", "csv", "json"}

// Export renders report in the named format.
func Export(report Report, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "text", "table":
		return ExportToText(report), nil
	case "markdown", "md":
		return ExportToMarkdown(report), nil
	case "csv":
		return ExportToCSV(report.View)
	case "json":
		return ExportToJSON(report, true)
	default:
		return nil, fmt.Errorf("%w: unknown format %q (want one of %s)",
			shared.ErrInvalidArgument, format, strings.Join(Formats, ", "))
	}
}
