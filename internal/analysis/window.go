package analysis

import (
	"fmt"
	"time"
)

// WindowKind selects how a time window is interpreted.
type WindowKind int

const (
	AllTime WindowKind = iota
	ThisYear
	LastMonths
	CustomRange
)

// TimeWindow is a date-range filter applied to records before ranking
// or progression. Custom ranges are inclusive on both ends.
type TimeWindow struct {
	Kind   WindowKind
	Months int       // for LastMonths
	From   time.Time // for CustomRange
	To     time.Time // for CustomRange
}

// Bounds resolves the window against now into an inclusive [from, to]
// interval. The boolean results report whether each end is bounded.
func (w TimeWindow) Bounds(now time.Time) (from, to time.Time, hasFrom, hasTo bool) {
	switch w.Kind {
	case ThisYear:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return from, time.Time{}, true, false
	case LastMonths:
		return now.AddDate(0, -w.Months, 0), time.Time{}, true, false
	case CustomRange:
		return w.From, w.To, !w.From.IsZero(), !w.To.IsZero()
	default:
		return time.Time{}, time.Time{}, false, false
	}
}

// Contains reports whether t falls inside the window resolved at now.
func (w TimeWindow) Contains(now, t time.Time) bool {
	from, to, hasFrom, hasTo := w.Bounds(now)
	if hasFrom && t.Before(from) {
		return false
	}
	if hasTo && t.After(to) {
		return false
	}
	return true
}

// String returns a short label for display.
func (w TimeWindow) String() string {
	switch w.Kind {
	case ThisYear:
		return "This Year"
	case LastMonths:
		return fmt.Sprintf("Last %d Months", w.Months)
	case CustomRange:
		return fmt.Sprintf("%s - %s", w.From.Format("2006-01-02"), w.To.Format("2006-01-02"))
	default:
		return "All Time"
	}
}
