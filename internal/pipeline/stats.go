package pipeline

import "time"

// Stats aggregates counters for one pipeline pass. It is mutated only by
// the running pipeline and read-only once Run returns.
type Stats struct {
	TotalCells      int
	TranslatedCells int
	SkippedCells    int
	SkippedEmpty    int
	SkippedNumbers  int
	SkippedKorean   int
	ErrorCells      int
	Elapsed         time.Duration
}
