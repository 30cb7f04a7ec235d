package analysis

import (
	"sort"
	"time"
)

// Record is a best-effort segment enriched with the activity metadata
// needed for ranking and display. Duration comparisons always use raw
// seconds; formatted paces are display-only.
type Record struct {
	ActivityID   int64
	ActivityName string
	Date         time.Time // activity start date, not elapsed time

	Label        string
	TargetMeters float64

	Duration      int     // seconds for the best segment
	CoveredMeters float64 // meters the segment actually covered

	RunDistance float64 // full-activity meters
	RunDuration int     // full-activity seconds

	StartIndex, EndIndex   int
	StartOffset, EndOffset int // elapsed seconds into the activity

	// Extras carries optional physiological or technical fields
	// (heart rate, cadence, elevation, power) through unmodified.
	Extras map[string]float64

	// Rank is 1-based and assigned by Rank or Progression.
	Rank int
}

// Rank orders records fastest-first and assigns 1-based ranks. Ties in
// duration keep their input order. A limit of 0 returns the full
// sorted set; otherwise the first limit entries are returned. The
// input slice is not modified.
func Rank(records []Record, limit int) []Record {
	ranked := make([]Record, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Duration < ranked[j].Duration
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
