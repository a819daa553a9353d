package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"

	"github.com/vburojevic/loglyzer/internal/analyze"
	"github.com/vburojevic/loglyzer/internal/domain"
	"github.com/vburojevic/loglyzer/internal/output"
)

// AnalyzeCmd analyzes a log file and renders aggregate statistics
type AnalyzeCmd struct {
	File        string `arg:"" optional:"" help:"Log file to analyze (reads stdin when piped)"`
	ErrorsOnly  bool   `short:"e" help:"Keep only ERROR-level records"`
	Search      string `short:"s" help:"Keep records whose message contains this text (case-insensitive)"`
	Top         int    `default:"${config_top}" help:"Show top N most frequent errors"`
	ShowEntries bool   `help:"Append a detail table of the filtered records (text format only)"`

	// Clock is injectable for tests; defaults to the real clock.
	Clock clock.Clock `kong:"-"`
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	if c.Clock == nil {
		c.Clock = clock.New()
	}

	if c.Top < 0 {
		return outputErrorCommon(globals, "INVALID_CONFIG", fmt.Sprintf("top must be >= 0, got %d", c.Top))
	}

	criteria := c.criteria(globals)
	showEntries := c.ShowEntries || globals.Config.Defaults.ShowEntries

	renderer, err := output.NewRenderer(globals.Format, showEntries)
	if err != nil {
		return outputErrorCommon(globals, "INVALID_CONFIG", err.Error())
	}

	in, name, cleanup, err := c.openInput(globals)
	if err != nil {
		return err
	}
	defer cleanup()

	globals.Debug("analyzing %s (errors_only=%v search=%q top=%d format=%s)",
		name, criteria.ErrorsOnly, criteria.Search, c.Top, globals.Format)

	start := c.Clock.Now()
	result, err := analyze.Run(in, criteria, c.Top)
	if err != nil {
		return outputErrorCommon(globals, "READ_ERROR", err.Error())
	}
	globals.Debug("analyzed %d records in %s, skipped %d malformed lines",
		result.Stats.Total, c.Clock.Since(start), result.Malformed)

	return renderer.Render(globals.Stdout, result.Stats, result.Entries)
}

// criteria merges command flags with configured defaults.
func (c *AnalyzeCmd) criteria(globals *Globals) domain.FilterCriteria {
	criteria := domain.FilterCriteria{
		ErrorsOnly: c.ErrorsOnly || globals.Config.Defaults.ErrorsOnly,
		Search:     c.Search,
	}
	if criteria.Search == "" {
		criteria.Search = globals.Config.Defaults.Search
	}
	return criteria
}

// openInput resolves the input source: the file argument when given,
// otherwise piped stdin.
func (c *AnalyzeCmd) openInput(globals *Globals) (io.Reader, string, func(), error) {
	if c.File != "" {
		file, err := os.Open(c.File)
		if err != nil {
			return nil, "", nil, outputErrorCommon(globals, "FILE_NOT_FOUND", fmt.Sprintf("cannot open file: %s", err))
		}
		cleanup := func() {
			if err := file.Close(); err != nil {
				globals.Debug("failed to close %s: %v", c.File, err)
			}
		}
		return file, c.File, cleanup, nil
	}

	if f, ok := globals.Stdin.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return nil, "", nil, outputErrorCommon(globals, "NO_INPUT", "no input file given and stdin is a terminal")
		}
	}
	return globals.Stdin, "stdin", func() {}, nil
}
