package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vburojevic/loglyzer/internal/domain"
)

// CSVRenderer writes one fixed layout: a `section,name,count` header, one
// `level` row per level in the stable level order, then one `top_error`
// row per ranked message. encoding/csv quotes any message containing a
// comma, quote, or newline.
type CSVRenderer struct{}

// Render writes the CSV rows to w
func (r *CSVRenderer) Render(w io.Writer, stats *domain.Statistics, _ []domain.LogEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"section", "name", "count"}); err != nil {
		return err
	}
	for _, lvl := range domain.Levels {
		row := []string{"level", string(lvl), strconv.Itoa(stats.CountsByLevel[lvl])}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	for _, e := range stats.TopErrors {
		row := []string{"top_error", e.Message, strconv.Itoa(e.Count)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
