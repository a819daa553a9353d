package filter

import (
	"github.com/vburojevic/loglyzer/internal/domain"
)

// FromCriteria builds the filter chain for a set of criteria. With no
// active predicates the returned chain passes every entry through.
func FromCriteria(c domain.FilterCriteria) *Chain {
	chain := NewChain()
	if c.ErrorsOnly {
		chain.Add(NewLevelFilter(domain.LogLevelError))
	}
	if c.Search != "" {
		chain.Add(NewSearchFilter(c.Search))
	}
	return chain
}
