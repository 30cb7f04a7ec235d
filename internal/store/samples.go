package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// SaveSamples stores the raw sample stream for an activity, replacing
// any existing samples.
func (db *DB) SaveSamples(activityID int64, points []SamplePoint) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM samples WHERE activity_id = ?", activityID); err != nil {
		return fmt.Errorf("deleting existing samples: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO samples (
			activity_id, time_offset, distance, latlng_lat, latlng_lng,
			altitude, heartrate, cadence, power
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		_, err := stmt.Exec(
			p.ActivityID, p.TimeOffset, p.Distance, p.Lat, p.Lng,
			p.Altitude, p.Heartrate, p.Cadence, p.Power,
		)
		if err != nil {
			return fmt.Errorf("inserting sample: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// GetSamples retrieves all sample points for an activity, ordered by
// time offset.
func (db *DB) GetSamples(activityID int64) ([]SamplePoint, error) {
	rows, err := db.Query(`
		SELECT activity_id, time_offset, distance, latlng_lat, latlng_lng,
			altitude, heartrate, cadence, power
		FROM samples
		WHERE activity_id = ?
		ORDER BY time_offset
	`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []SamplePoint
	for rows.Next() {
		var p SamplePoint
		err := rows.Scan(
			&p.ActivityID, &p.TimeOffset, &p.Distance, &p.Lat, &p.Lng,
			&p.Altitude, &p.Heartrate, &p.Cadence, &p.Power,
		)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// HasSamples checks if an activity has sample data
func (db *DB) HasSamples(activityID int64) (bool, error) {
	var exists int
	err := db.QueryRow(`
		SELECT 1 FROM samples WHERE activity_id = ? LIMIT 1
	`, activityID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteSamples removes all sample data for an activity
func (db *DB) DeleteSamples(activityID int64) error {
	_, err := db.Exec("DELETE FROM samples WHERE activity_id = ?", activityID)
	return err
}
