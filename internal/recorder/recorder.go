package recorder

import (
	"gridtrade/internal/dto"
)

// SearchSnapshot holds everything worth keeping from one completed weekday
// search: the discovered pair, its totals and the projection inputs.
type SearchSnapshot struct {
	Result          dto.SearchResult
	BestProjection  *dto.Projection
	WorstProjection *dto.Projection
	StartingBalance float64
	FeePerTrade     float64
}

// Recorder persists completed searches for later comparison across runs.
type Recorder interface {
	RecordSearch(snap *SearchSnapshot) error
	Close() error
}
