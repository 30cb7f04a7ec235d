package analysis

import "sort"

// Progression derives the record-breaking history for one target
// distance: the records, in activity-date order, that each improved on
// every earlier record. Ranks are 1-based positions within the
// progression itself. Records that were not an improvement at the time
// they happened are discarded, including records that merely equal the
// then-current best. The input slice is not modified.
func Progression(records []Record) []Record {
	byDate := make([]Record, len(records))
	copy(byDate, records)

	sort.SliceStable(byDate, func(i, j int) bool {
		return byDate[i].Date.Before(byDate[j].Date)
	})

	var progression []Record
	currentBest := -1
	for _, r := range byDate {
		if currentBest >= 0 && r.Duration >= currentBest {
			continue
		}
		r.Rank = len(progression) + 1
		progression = append(progression, r)
		currentBest = r.Duration
	}
	return progression
}
