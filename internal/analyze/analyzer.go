package analyze

import (
	"github.com/vburojevic/loglyzer/internal/domain"
)

// Analyzer aggregates filtered log entries into run statistics.
type Analyzer struct{}

// NewAnalyzer creates a new log analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Summarize consumes the filtered entries once and produces the aggregate
// Statistics plus the ERROR-message frequency table used for ranking.
// Messages are tallied exactly as parsed, no normalization.
func (a *Analyzer) Summarize(entries []domain.LogEntry) (*domain.Statistics, map[string]int) {
	stats := domain.NewStatistics()
	errorMessages := make(map[string]int)

	for _, entry := range entries {
		stats.Total++
		stats.CountsByLevel[entry.Level]++

		if entry.Level == domain.LogLevelError {
			errorMessages[entry.Message]++
		}
	}

	return stats, errorMessages
}
