package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertBestEffortIfAbsent stores a best-effort segment unless one
// already exists for the same (activity, distance label). Returns true
// when a row was inserted. Re-running ingestion for an activity is
// therefore idempotent.
func (db *DB) InsertBestEffortIfAbsent(be *BestEffort) (inserted bool, err error) {
	result, err := db.Exec(`
		INSERT OR IGNORE INTO best_efforts (
			activity_id, distance_label, target_meters, duration_seconds,
			covered_meters, start_index, end_index, start_offset, end_offset,
			start_lat, start_lng, end_lat, end_lng, achieved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		be.ActivityID, be.DistanceLabel, be.TargetMeters, be.DurationSeconds,
		be.CoveredMeters, be.StartIndex, be.EndIndex, be.StartOffset, be.EndOffset,
		be.StartLat, be.StartLng, be.EndLat, be.EndLng,
		be.AchievedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// HasBestEfforts checks whether any best efforts are recorded for an
// activity.
func (db *DB) HasBestEfforts(activityID int64) (bool, error) {
	var exists int
	err := db.QueryRow(`
		SELECT 1 FROM best_efforts WHERE activity_id = ? LIMIT 1
	`, activityID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListBestEfforts returns all best efforts for one distance label
// whose activity date falls inside [from, to] (either bound may be
// nil for unbounded), joined with activity metadata and ordered by
// activity date ascending.
func (db *DB) ListBestEfforts(label string, from, to *time.Time) ([]BestEffortRecord, error) {
	query := `
		SELECT e.id, e.activity_id, e.distance_label, e.target_meters,
			e.duration_seconds, e.covered_meters, e.start_index, e.end_index,
			e.start_offset, e.end_offset, e.start_lat, e.start_lng,
			e.end_lat, e.end_lng, e.achieved_at,
			a.name, a.distance, a.moving_time, a.total_elevation_gain,
			a.average_heartrate, a.average_cadence, a.average_power
		FROM best_efforts e
		JOIN activities a ON a.id = e.activity_id
		WHERE e.distance_label = ?`
	args := []any{label}

	// achieved_at is stored as RFC3339 UTC, so lexicographic
	// comparison matches chronological order.
	if from != nil {
		query += ` AND e.achieved_at >= ?`
		args = append(args, from.UTC().Format(time.RFC3339))
	}
	if to != nil {
		query += ` AND e.achieved_at <= ?`
		args = append(args, to.UTC().Format(time.RFC3339))
	}

	query += ` ORDER BY e.achieved_at ASC, e.id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []BestEffortRecord
	for rows.Next() {
		var r BestEffortRecord
		var achievedAt string
		var elevation sql.NullFloat64

		err := rows.Scan(
			&r.ID, &r.ActivityID, &r.DistanceLabel, &r.TargetMeters,
			&r.DurationSeconds, &r.CoveredMeters, &r.StartIndex, &r.EndIndex,
			&r.StartOffset, &r.EndOffset, &r.StartLat, &r.StartLng,
			&r.EndLat, &r.EndLng, &achievedAt,
			&r.ActivityName, &r.RunDistance, &r.RunDuration, &elevation,
			&r.AverageHeartrate, &r.AverageCadence, &r.AveragePower,
		)
		if err != nil {
			return nil, err
		}

		r.AchievedAt, err = time.Parse(time.RFC3339, achievedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing achieved_at %q: %w", achievedAt, err)
		}
		r.ElevationGain = elevation.Float64
		records = append(records, r)
	}

	return records, rows.Err()
}

// ListEffortLabels returns the distance labels that have at least one
// recorded best effort, shortest distance first.
func (db *DB) ListEffortLabels() ([]string, error) {
	rows, err := db.Query(`
		SELECT distance_label FROM best_efforts
		GROUP BY distance_label ORDER BY MIN(target_meters)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// DeleteBestEffortsForActivity removes all best efforts derived from an
// activity. Used when an activity is re-ingested.
func (db *DB) DeleteBestEffortsForActivity(activityID int64) error {
	_, err := db.Exec(`DELETE FROM best_efforts WHERE activity_id = ?`, activityID)
	return err
}
