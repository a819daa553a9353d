package output

import (
	"fmt"
	"io"

	"github.com/vburojevic/loglyzer/internal/domain"
)

// Renderer produces the final payload for one analysis run. Every
// implementation is a pure function of its inputs: the same statistics and
// entries always produce byte-identical output.
type Renderer interface {
	Render(w io.Writer, stats *domain.Statistics, entries []domain.LogEntry) error
}

// NewRenderer selects the renderer for a format name. showEntries only
// affects the text renderer, which can append a detail table of the
// filtered records.
func NewRenderer(format string, showEntries bool) (Renderer, error) {
	switch format {
	case "text":
		return &TextRenderer{ShowEntries: showEntries}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "csv":
		return &CSVRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
