package filter

import (
	"strings"

	"github.com/vburojevic/loglyzer/internal/domain"
)

// SearchFilter keeps entries whose message contains a term, ignoring case.
type SearchFilter struct {
	term string
}

// NewSearchFilter creates a case-insensitive substring filter
func NewSearchFilter(term string) *SearchFilter {
	return &SearchFilter{term: strings.ToLower(term)}
}

// Match returns true if the entry message contains the search term
func (f *SearchFilter) Match(entry *domain.LogEntry) bool {
	if f.term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Message), f.term)
}
