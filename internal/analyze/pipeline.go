package analyze

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vburojevic/loglyzer/internal/domain"
	"github.com/vburojevic/loglyzer/internal/filter"
	"github.com/vburojevic/loglyzer/internal/parse"
)

// Result holds everything one analysis run produces: the aggregate
// statistics, the filtered entries (retained for the optional detail
// listing), and the count of malformed lines that were skipped.
type Result struct {
	Stats     *domain.Statistics
	Entries   []domain.LogEntry
	Malformed int
}

// Run executes the full parse -> filter -> aggregate -> rank pipeline over
// the lines read from r. Malformed lines are counted and skipped; the only
// error returned is a read failure from the underlying source.
func Run(r io.Reader, criteria domain.FilterCriteria, topN int) (*Result, error) {
	parser := parse.NewParser()
	chain := filter.FromCriteria(criteria)

	var entries []domain.LogEntry
	malformed := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		entry, err := parser.Parse(scanner.Text())
		if err != nil {
			malformed++
			continue
		}
		if !chain.Match(entry) {
			continue
		}
		entries = append(entries, *entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	stats, errorMessages := NewAnalyzer().Summarize(entries)
	stats.TopErrors = TopErrors(errorMessages, topN)

	return &Result{
		Stats:     stats,
		Entries:   entries,
		Malformed: malformed,
	}, nil
}
