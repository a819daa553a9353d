package domain

// ErrorFrequency is one ranked (message, count) pair.
type ErrorFrequency struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Statistics holds the aggregated counts for one analysis run. Built once
// per run and immutable after the aggregation pass completes.
type Statistics struct {
	Total         int              `json:"total"`
	CountsByLevel map[LogLevel]int `json:"countsByLevel"`
	TopErrors     []ErrorFrequency `json:"topErrors"`
}

// NewStatistics creates an empty Statistics with all four levels present
// so countsByLevel is always exhaustive.
func NewStatistics() *Statistics {
	counts := make(map[LogLevel]int, len(Levels))
	for _, lvl := range Levels {
		counts[lvl] = 0
	}
	return &Statistics{
		CountsByLevel: counts,
		TopErrors:     []ErrorFrequency{},
	}
}
