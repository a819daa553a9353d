package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/vburojevic/loglyzer/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// TextRenderer writes a human-readable tabular report: total count,
// per-level counts in the stable level order, and the ranked top errors.
// With ShowEntries it appends a detail table of the filtered records.
type TextRenderer struct {
	ShowEntries bool
}

// Render writes the text report to w
func (r *TextRenderer) Render(w io.Writer, stats *domain.Statistics, entries []domain.LogEntry) error {
	if _, err := fmt.Fprintln(w, Styles.Title.Render("Log Analysis Results")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "===================="); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total entries: %d\n\n", stats.Total); err != nil {
		return err
	}

	levels := tablewriter.NewTable(w)
	levels.Header("Level", "Count")
	for _, lvl := range domain.Levels {
		if err := levels.Append([]string{string(lvl), strconv.Itoa(stats.CountsByLevel[lvl])}); err != nil {
			return err
		}
	}
	if err := levels.Render(); err != nil {
		return err
	}

	if len(stats.TopErrors) > 0 {
		if _, err := fmt.Fprintln(w, "\n"+Styles.Section.Render("Top errors:")); err != nil {
			return err
		}
		errs := tablewriter.NewTable(w)
		errs.Header("Message", "Occurrences")
		for _, e := range stats.TopErrors {
			if err := errs.Append([]string{e.Message, strconv.Itoa(e.Count)}); err != nil {
				return err
			}
		}
		if err := errs.Render(); err != nil {
			return err
		}
	}

	if r.ShowEntries && len(entries) > 0 {
		if _, err := fmt.Fprintln(w, "\n"+Styles.Section.Render("Entries:")); err != nil {
			return err
		}
		detail := tablewriter.NewTable(w)
		detail.Header("Timestamp", "Level", "Message")
		for _, entry := range entries {
			row := []string{
				entry.Timestamp.Format(timestampLayout),
				LevelStyle(string(entry.Level)).Render(string(entry.Level)),
				entry.Message,
			}
			if err := detail.Append(row); err != nil {
				return err
			}
		}
		if err := detail.Render(); err != nil {
			return err
		}
	}

	return nil
}
