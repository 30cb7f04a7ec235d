package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// UpsertActivity inserts or updates an activity summary.
func (db *DB) UpsertActivity(a *Activity) error {
	_, err := db.Exec(`
		INSERT INTO activities (
			id, athlete_id, name, type, start_date, timezone, distance,
			moving_time, elapsed_time, total_elevation_gain,
			average_heartrate, average_cadence, average_power, samples_synced
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			start_date = excluded.start_date,
			timezone = excluded.timezone,
			distance = excluded.distance,
			moving_time = excluded.moving_time,
			elapsed_time = excluded.elapsed_time,
			total_elevation_gain = excluded.total_elevation_gain,
			average_heartrate = excluded.average_heartrate,
			average_cadence = excluded.average_cadence,
			average_power = excluded.average_power,
			updated_at = CURRENT_TIMESTAMP
	`,
		a.ID, a.AthleteID, a.Name, a.Type, a.StartDate.UTC().Format(time.RFC3339),
		a.Timezone, a.Distance, a.MovingTime, a.ElapsedTime, a.TotalElevationGain,
		a.AverageHeartrate, a.AverageCadence, a.AveragePower, boolToInt(a.SamplesSynced),
	)
	return err
}

// GetActivity retrieves an activity by ID
func (db *DB) GetActivity(id int64) (*Activity, error) {
	row := db.QueryRow(activitySelect+` WHERE id = ?`, id)

	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	return a, err
}

// ListActivities returns activities ordered by start date descending
func (db *DB) ListActivities(limit, offset int) ([]Activity, error) {
	rows, err := db.Query(activitySelect+`
		ORDER BY start_date DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// GetActivitiesByIDs retrieves multiple activities in one query.
func (db *DB) GetActivitiesByIDs(ids []int64) (map[int64]*Activity, error) {
	result := make(map[int64]*Activity, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.Query(activitySelect+` WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities, err := scanActivities(rows)
	if err != nil {
		return nil, err
	}
	for i := range activities {
		result[activities[i].ID] = &activities[i]
	}
	return result, nil
}

// GetActivitiesNeedingSamples returns activities whose raw samples
// haven't been synced yet.
func (db *DB) GetActivitiesNeedingSamples(limit int) ([]Activity, error) {
	rows, err := db.Query(activitySelect+`
		WHERE samples_synced = 0 ORDER BY start_date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// MarkSamplesSynced marks an activity's samples as synced
func (db *DB) MarkSamplesSynced(id int64) error {
	result, err := db.Exec(`
		UPDATE activities SET samples_synced = 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// CountActivities returns the total number of activities
func (db *DB) CountActivities() (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&count)
	return count, err
}

const activitySelect = `
	SELECT id, athlete_id, name, type, start_date, timezone, distance,
		moving_time, elapsed_time, total_elevation_gain,
		average_heartrate, average_cadence, average_power, samples_synced
	FROM activities`

type scannable interface {
	Scan(dest ...any) error
}

func scanActivity(row scannable) (*Activity, error) {
	var a Activity
	var startDate string
	var timezone sql.NullString
	var elevation sql.NullFloat64
	var synced int

	err := row.Scan(
		&a.ID, &a.AthleteID, &a.Name, &a.Type, &startDate, &timezone,
		&a.Distance, &a.MovingTime, &a.ElapsedTime, &elevation,
		&a.AverageHeartrate, &a.AverageCadence, &a.AveragePower, &synced,
	)
	if err != nil {
		return nil, err
	}

	a.StartDate, err = time.Parse(time.RFC3339, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date %q: %w", startDate, err)
	}
	a.Timezone = timezone.String
	a.TotalElevationGain = elevation.Float64
	a.SamplesSynced = synced == 1
	return &a, nil
}

func scanActivities(rows *sql.Rows) ([]Activity, error) {
	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
