package domain

import "time"

// LogLevel represents the severity of a log record
type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARNING"
	LogLevelError   LogLevel = "ERROR"
	LogLevelDebug   LogLevel = "DEBUG"
)

// Levels lists all known levels in the stable display order used by every
// renderer (INFO, WARNING, ERROR, DEBUG).
var Levels = []LogLevel{LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelDebug}

// ParseLogLevel converts a level token to a LogLevel. Tokens are matched
// literally as uppercase; anything else (including "WARN" and mixed case)
// is rejected.
func ParseLogLevel(s string) (LogLevel, bool) {
	switch s {
	case "INFO":
		return LogLevelInfo, true
	case "WARNING":
		return LogLevelWarning, true
	case "ERROR":
		return LogLevelError, true
	case "DEBUG":
		return LogLevelDebug, true
	default:
		return "", false
	}
}

// LogEntry represents one structured record decoded from a single log line.
// Entries are never mutated after construction.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
}

// FilterCriteria holds the optional record predicates. Active predicates
// are ANDed.
type FilterCriteria struct {
	ErrorsOnly bool
	Search     string
}

// Active reports whether any predicate is configured.
func (c FilterCriteria) Active() bool {
	return c.ErrorsOnly || c.Search != ""
}
