package analyze

import (
	"sort"

	"github.com/vburojevic/loglyzer/internal/domain"
)

// TopErrors returns the top-N (message, count) pairs from a frequency
// table, sorted by count descending with ties broken by message text
// ascending. The byte-order tie-break keeps the result independent of map
// iteration order.
func TopErrors(counts map[string]int, n int) []domain.ErrorFrequency {
	ranked := make([]domain.ErrorFrequency, 0, len(counts))
	for msg, count := range counts {
		ranked = append(ranked, domain.ErrorFrequency{Message: msg, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Message < ranked[j].Message
	})

	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
