// Package render draws the banner, schedule tables and run summary for the
// terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jamhacks/jamsched/internal/adapters/csvio"
	"github.com/jamhacks/jamsched/internal/domain/model"
)

const banner = `
     ██╗ █████╗ ███╗   ███╗██╗  ██╗ █████╗  ██████╗██╗  ██╗███████╗     █████╗
     ██║██╔══██╗████╗ ████║██║  ██║██╔══██╗██╔════╝██║ ██╔╝██╔════╝    ██╔══██╗
     ██║███████║██╔████╔██║███████║███████║██║     █████╔╝ ███████╗    ╚██████║
██   ██║██╔══██║██║╚██╔╝██║██╔══██║██╔══██║██║     ██╔═██╗ ╚════██║     ╚═══██║
╚█████╔╝██║  ██║██║ ╚═╝ ██║██║  ██║██║  ██║╚██████╗██║  ██╗███████║     █████╔╝
 ╚════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝     ╚════╝

    JUDGING SCHEDULER`

// Banner returns the styled startup logo.
func Banner() string {
	return bannerStyle.Render(banner)
}

// Summary is the run outcome shown in the closing panel.
type Summary struct {
	Start         time.Time
	End           time.Time
	TargetEnd     time.Time
	Overrun       time.Duration
	TeamsLoaded   int
	RowsSkipped   int
	TeamsRouted   int
	TeamsUnrouted int
	Slots         int
	Dropped       int
	Unmatched     int
}

// SummaryPanel renders the closing run summary.
func SummaryPanel(s Summary) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(labelStyle.Render(label+": ") + value + "\n")
	}
	line("Judging start", s.Start.Format(csvio.TimeFormat))
	line("Judging end", s.End.Format(csvio.TimeFormat))
	line("Teams", fmt.Sprintf("%d loaded, %d routed, %d unrouted", s.TeamsLoaded, s.TeamsRouted, s.TeamsUnrouted))
	line("Slots", fmt.Sprintf("%d", s.Slots))
	if s.RowsSkipped > 0 {
		line("Rows skipped", fmt.Sprintf("%d", s.RowsSkipped))
	}
	if s.Unmatched > 0 {
		line("Unmatched categories", fmt.Sprintf("%d", s.Unmatched))
	}
	if s.Dropped > 0 {
		line("Dropped entries", fmt.Sprintf("%d", s.Dropped))
	}
	if s.Overrun > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf(
			"Overrun: schedule ends %.0f minutes past the %s target",
			s.Overrun.Minutes(), s.TargetEnd.Format(csvio.TimeFormat))))
	} else if !s.TargetEnd.IsZero() {
		b.WriteString(labelStyle.Render("Target end: ") + s.TargetEnd.Format(csvio.TimeFormat) + " (met)")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// BucketTable renders one bucket's schedule as an aligned table.
func BucketTable(bs model.BucketSchedule) string {
	title := bucketTitleStyle.Render(bs.Bucket.Name) + " " +
		countStyle.Render(fmt.Sprintf("(%d teams)", len(bs.Slots)))
	if len(bs.Slots) == 0 {
		return title + "\n  no teams assigned\n"
	}

	header := []string{"Team", "Start", "End", "Categories"}
	rows := make([][]string, 0, len(bs.Slots))
	for _, s := range bs.Slots {
		rows = append(rows, []string{
			s.TeamName,
			s.Start.Format(csvio.TimeFormat),
			s.End.Format(csvio.TimeFormat),
			strings.Join(s.Categories, ", "),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(renderRow(header, widths, headerStyle) + "\n")
	for _, row := range rows {
		b.WriteString(renderRow(row, widths, cellStyle) + "\n")
	}
	return b.String()
}

// Board renders every non-empty bucket table separated by blank lines.
func Board(buckets []model.BucketSchedule) string {
	var parts []string
	for _, bs := range buckets {
		if len(bs.Slots) == 0 {
			continue
		}
		parts = append(parts, BucketTable(bs))
	}
	return strings.Join(parts, "\n")
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = style.Width(widths[i] + 2).Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}
