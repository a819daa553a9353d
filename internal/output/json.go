package output

import (
	"encoding/json"
	"io"

	"github.com/vburojevic/loglyzer/internal/domain"
)

// JSONRenderer writes the statistics as a single indented JSON document
// with fields total, countsByLevel, and topErrors. Map keys are emitted in
// sorted order so output is byte-identical across runs.
type JSONRenderer struct{}

// Render writes the JSON document to w
func (r *JSONRenderer) Render(w io.Writer, stats *domain.Statistics, _ []domain.LogEntry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // keep log messages unescaped
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
