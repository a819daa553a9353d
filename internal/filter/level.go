package filter

import (
	"github.com/vburojevic/loglyzer/internal/domain"
)

// LevelFilter keeps only entries of an exact log level
type LevelFilter struct {
	level domain.LogLevel
}

// NewLevelFilter creates a level filter
func NewLevelFilter(level domain.LogLevel) *LevelFilter {
	return &LevelFilter{level: level}
}

// Match returns true if the entry level equals the configured level
func (f *LevelFilter) Match(entry *domain.LogEntry) bool {
	return entry.Level == f.level
}
