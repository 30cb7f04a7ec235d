package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"stride/internal/analysis"
	"stride/internal/distances"
	"stride/internal/store"
	"stride/internal/units"
)

// QueryService answers record and progression queries from stored
// best efforts.
type QueryService struct {
	db  *store.DB
	now func() time.Time
}

// NewQueryService creates a query service
func NewQueryService(db *store.DB) *QueryService {
	return &QueryService{db: db, now: time.Now}
}

// Targets returns the canonical distances merged with any custom ones,
// in ascending order.
func (q *QueryService) Targets() ([]distances.TargetDistance, error) {
	custom, err := q.db.ListCustomDistances()
	if err != nil {
		return nil, fmt.Errorf("listing custom distances: %w", err)
	}
	return distances.Merge(custom)
}

// Labels returns the distance labels that actually have recorded
// efforts.
func (q *QueryService) Labels() ([]string, error) {
	return q.db.ListEffortLabels()
}

// Activities returns a page of stored runs, newest first.
func (q *QueryService) Activities(limit, offset int) ([]store.Activity, error) {
	return q.db.ListActivities(limit, offset)
}

// ActivityCount returns the total number of stored runs.
func (q *QueryService) ActivityCount() (int, error) {
	return q.db.CountActivities()
}

// TopRecords returns the ranked best efforts for a distance label
// within the window. A limit of 0 means unlimited.
func (q *QueryService) TopRecords(label string, window analysis.TimeWindow, limit int) ([]analysis.Record, error) {
	records, err := q.recordsFor(label, window)
	if err != nil {
		return nil, err
	}
	return analysis.Rank(records, limit), nil
}

// RecordProgression returns the chronological strictly-improving
// record history for a distance label within the window.
func (q *QueryService) RecordProgression(label string, window analysis.TimeWindow) ([]analysis.Record, error) {
	records, err := q.recordsFor(label, window)
	if err != nil {
		return nil, err
	}
	return analysis.Progression(records), nil
}

// recordsFor loads the raw records for a label, date-ascending.
func (q *QueryService) recordsFor(label string, window analysis.TimeWindow) ([]analysis.Record, error) {
	from, to, hasFrom, hasTo := window.Bounds(q.now())

	var fromPtr, toPtr *time.Time
	if hasFrom {
		fromPtr = &from
	}
	if hasTo {
		toPtr = &to
	}

	rows, err := q.db.ListBestEfforts(label, fromPtr, toPtr)
	if err != nil {
		return nil, fmt.Errorf("listing best efforts for %q: %w", label, err)
	}

	records := make([]analysis.Record, len(rows))
	for i, r := range rows {
		records[i] = toRecord(r)
	}
	return records, nil
}

// toRecord converts a stored effort row into an analysis record.
func toRecord(r store.BestEffortRecord) analysis.Record {
	rec := analysis.Record{
		ActivityID:    r.ActivityID,
		ActivityName:  r.ActivityName,
		Date:          r.AchievedAt,
		Label:         r.DistanceLabel,
		TargetMeters:  r.TargetMeters,
		Duration:      r.DurationSeconds,
		CoveredMeters: r.CoveredMeters,
		RunDistance:   r.RunDistance,
		RunDuration:   r.RunDuration,
		StartIndex:    r.StartIndex,
		EndIndex:      r.EndIndex,
		StartOffset:   r.StartOffset,
		EndOffset:     r.EndOffset,
		Extras:        map[string]float64{"elevation": r.ElevationGain},
	}
	if r.AverageHeartrate != nil {
		rec.Extras["heartrate"] = *r.AverageHeartrate
	}
	if r.AverageCadence != nil {
		rec.Extras["cadence"] = *r.AverageCadence
	}
	if r.AveragePower != nil {
		rec.Extras["power"] = *r.AveragePower
	}
	return rec
}

// ParseWindow interprets a config window string: "all", "year", or a
// month count like "6m". Unrecognized values fall back to all-time.
func ParseWindow(s string) analysis.TimeWindow {
	switch s {
	case "", "all":
		return analysis.TimeWindow{Kind: analysis.AllTime}
	case "year":
		return analysis.TimeWindow{Kind: analysis.ThisYear}
	}
	if n, err := strconv.Atoi(strings.TrimSuffix(s, "m")); err == nil && n > 0 {
		return analysis.TimeWindow{Kind: analysis.LastMonths, Months: n}
	}
	return analysis.TimeWindow{Kind: analysis.AllTime}
}

// RecordRow is a display-ready rendering of one ranked record.
type RecordRow struct {
	Rank      int
	Time      string // segment duration, H:MM:SS or M:SS
	Pace      string // per-km pace over the target distance
	Date      string
	Activity  string
	Heartrate string // "-" when absent
}

// FormatRecords renders ranked records for tabular display.
func FormatRecords(records []analysis.Record) []RecordRow {
	rows := make([]RecordRow, len(records))
	for i, r := range records {
		row := RecordRow{
			Rank:      r.Rank,
			Time:      units.FormatDuration(r.Duration),
			Pace:      units.SegmentPace(r.Duration, r.TargetMeters),
			Date:      r.Date.Format("2006-01-02"),
			Activity:  r.ActivityName,
			Heartrate: "-",
		}
		if hr, ok := r.Extras["heartrate"]; ok {
			row.Heartrate = fmt.Sprintf("%.0f", hr)
		}
		rows[i] = row
	}
	return rows
}

// ProgressionRow is a display-ready rendering of one progression step.
type ProgressionRow struct {
	Time        string
	Improvement string // seconds faster than the previous record, "-" for the first
	Date        string
	Activity    string
}

// FormatProgression renders a progression for tabular display, oldest
// first.
func FormatProgression(records []analysis.Record) []ProgressionRow {
	rows := make([]ProgressionRow, len(records))
	for i, r := range records {
		row := ProgressionRow{
			Time:     units.FormatDuration(r.Duration),
			Date:     r.Date.Format("2006-01-02"),
			Activity: r.ActivityName,
		}
		if i == 0 {
			row.Improvement = "-"
		} else {
			row.Improvement = fmt.Sprintf("-%ds", records[i-1].Duration-r.Duration)
		}
		rows[i] = row
	}
	return rows
}
