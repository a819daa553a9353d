package parse

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/vburojevic/loglyzer/internal/domain"
)

// ErrMalformed marks an input line that does not match the required layout.
// Callers count malformed lines and move on; they are never fatal.
var ErrMalformed = errors.New("malformed log line")

// lineRe matches `YYYY-MM-DD HH:MM:SS [LEVEL] Message`, anchored at both
// ends. The level token is captured loosely and validated separately so an
// unknown token is reported the same way as a structural mismatch.
var lineRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) \[(\w+)\] (.*)$`)

const timestampLayout = "2006-01-02 15:04:05"

// Parser parses raw text log lines into structured LogEntry values.
type Parser struct{}

// NewParser creates a new line parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts one raw line to a LogEntry. It returns ErrMalformed when
// the line structure, level token, or calendar date is invalid.
func (p *Parser) Parse(line string) (*domain.LogEntry, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return nil, ErrMalformed
	}

	level, ok := domain.ParseLogLevel(m[2])
	if !ok {
		return nil, ErrMalformed
	}

	// time.Parse rejects impossible dates (month 13, hour 25) that the
	// digit pattern alone lets through.
	ts, err := time.Parse(timestampLayout, m[1])
	if err != nil {
		return nil, ErrMalformed
	}

	return &domain.LogEntry{
		Timestamp: ts,
		Level:     level,
		Message:   strings.TrimSpace(m[3]),
	}, nil
}
